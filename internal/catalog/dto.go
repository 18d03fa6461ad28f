// AngelaMos | 2026
// dto.go

package catalog

type DescriptionItemInput struct {
	ID   string `json:"id"   validate:"omitempty,len=24,hexadecimal"`
	Text string `json:"text" validate:"required,min=1,max=500"`
}

type CreateOfferingRequest struct {
	Title       string                 `json:"title"       validate:"required,min=1,max=200"`
	SubTitle    string                 `json:"subTitle"    validate:"required,min=1,max=300"`
	Description []DescriptionItemInput `json:"description" validate:"required,min=1,max=4,dive"`
}

type UpdateOfferingRequest struct {
	Title       *string                 `json:"title"       validate:"omitempty,min=1,max=200"`
	SubTitle    *string                 `json:"subTitle"    validate:"omitempty,min=1,max=300"`
	Description *[]DescriptionItemInput `json:"description" validate:"omitempty,min=1,max=4,dive"`
}

type ListOfferingsResponse struct {
	Services   []Offering `json:"services"`
	Pagination any        `json:"pagination"`
}
