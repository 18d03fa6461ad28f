// AngelaMos | 2026
// entity.go

package property

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeForSale = "FOR_SALE"
	TypeForRent = "FOR_RENT"
)

const (
	StatusPending = "pending"
	StatusActive  = "active"
	StatusBan     = "ban"
)

type Property struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"             json:"_id"`
	Owner           primitive.ObjectID `bson:"owner"                     json:"owner"`
	PropertyName    string             `bson:"propertyName"              json:"propertyName"`
	Address         string             `bson:"address"                   json:"address"`
	PropertyType    string             `bson:"propertyType"              json:"propertyType"`
	Status          string             `bson:"status"                    json:"status"`
	Overview        string             `bson:"overview,omitempty"        json:"overview,omitempty"`
	KeyFeatures     string             `bson:"keyFeatures,omitempty"     json:"keyFeatures,omitempty"`
	Bedrooms        int                `bson:"bedrooms"                  json:"bedrooms"`
	Bathrooms       int                `bson:"bathrooms"                 json:"bathrooms"`
	SquareFeet      float64            `bson:"squareFeet"                json:"squareFeet"`
	LotSize         float64            `bson:"lotSize"                   json:"lotSize"`
	Price           float64            `bson:"price"                     json:"price"`
	YearBuilt       int                `bson:"yearBuilt"                 json:"yearBuilt"`
	MoreDetails     string             `bson:"moreDetails,omitempty"     json:"moreDetails,omitempty"`
	Photos          []string           `bson:"photos"                    json:"photos"`
	LocationMapLink string             `bson:"locationMapLink,omitempty" json:"locationMapLink,omitempty"`
	IsPosted        bool               `bson:"isPosted"                  json:"isPosted"`
	CreatedAt       time.Time          `bson:"createdAt"                 json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"                 json:"updatedAt"`
}
