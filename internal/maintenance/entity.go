// AngelaMos | 2026
// entity.go

package maintenance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending = "PENDING"
	StatusDone    = "DONE"
)

type Maintenance struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"         json:"_id"`
	User         primitive.ObjectID `bson:"user"                  json:"user"`
	Amenities    string             `bson:"amenities"             json:"amenities"`
	Task         string             `bson:"task"                  json:"task"`
	ReminderDate time.Time          `bson:"reminderDate"          json:"reminderDate"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Status       string             `bson:"status"                json:"status"`
	CreatedAt    time.Time          `bson:"createdAt"             json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"             json:"updatedAt"`
}
