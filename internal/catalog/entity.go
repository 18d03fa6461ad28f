// AngelaMos | 2026
// entity.go

package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxDescriptionItems caps the bullet list shown on the service card.
const maxDescriptionItems = 4

type DescriptionItem struct {
	ID   primitive.ObjectID `bson:"id"   json:"id"`
	Text string             `bson:"text" json:"text"`
}

type Offering struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title"         json:"title"`
	SubTitle    string             `bson:"subTitle"      json:"subTitle"`
	Description []DescriptionItem  `bson:"description"   json:"description"`
	CreatedAt   time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"     json:"updatedAt"`
}
