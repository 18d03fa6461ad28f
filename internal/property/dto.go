// AngelaMos | 2026
// dto.go

package property

type CreatePropertyRequest struct {
	PropertyName    string   `json:"propertyName"    validate:"required,min=1,max=200"`
	Address         string   `json:"address"         validate:"required,max=255"`
	PropertyType    string   `json:"propertyType"    validate:"required,oneof=FOR_SALE FOR_RENT"`
	Overview        string   `json:"overview"        validate:"omitempty,max=5000"`
	KeyFeatures     string   `json:"keyFeatures"     validate:"omitempty,max=5000"`
	Bedrooms        int      `json:"bedrooms"        validate:"gte=0"`
	Bathrooms       int      `json:"bathrooms"       validate:"gte=0"`
	SquareFeet      float64  `json:"squareFeet"      validate:"gte=0"`
	LotSize         float64  `json:"lotSize"         validate:"gte=0"`
	Price           float64  `json:"price"           validate:"gte=0"`
	YearBuilt       int      `json:"yearBuilt"       validate:"gte=0"`
	MoreDetails     string   `json:"moreDetails"     validate:"omitempty,max=10000"`
	Photos          []string `json:"photos"          validate:"omitempty,dive,url"`
	LocationMapLink string   `json:"locationMapLink" validate:"omitempty,url"`
	IsPosted        *bool    `json:"isPosted"`
}

type UpdatePropertyRequest struct {
	PropertyName    *string   `json:"propertyName"    validate:"omitempty,min=1,max=200"`
	Address         *string   `json:"address"         validate:"omitempty,max=255"`
	PropertyType    *string   `json:"propertyType"    validate:"omitempty,oneof=FOR_SALE FOR_RENT"`
	Status          *string   `json:"status"          validate:"omitempty,oneof=pending active ban"`
	Overview        *string   `json:"overview"        validate:"omitempty,max=5000"`
	KeyFeatures     *string   `json:"keyFeatures"     validate:"omitempty,max=5000"`
	Bedrooms        *int      `json:"bedrooms"        validate:"omitempty,gte=0"`
	Bathrooms       *int      `json:"bathrooms"       validate:"omitempty,gte=0"`
	SquareFeet      *float64  `json:"squareFeet"      validate:"omitempty,gte=0"`
	LotSize         *float64  `json:"lotSize"         validate:"omitempty,gte=0"`
	Price           *float64  `json:"price"           validate:"omitempty,gte=0"`
	YearBuilt       *int      `json:"yearBuilt"       validate:"omitempty,gte=0"`
	MoreDetails     *string   `json:"moreDetails"     validate:"omitempty,max=10000"`
	Photos          *[]string `json:"photos"          validate:"omitempty,dive,url"`
	LocationMapLink *string   `json:"locationMapLink" validate:"omitempty,url"`
	IsPosted        *bool     `json:"isPosted"`
}

type ListPropertiesResponse struct {
	Properties []Property `json:"properties"`
	Pagination any        `json:"pagination"`
}
