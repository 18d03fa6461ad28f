// AngelaMos | 2026
// entity.go

package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeAlert             = "ALERT"
	TypeReminder          = "REMINDER"
	TypeActivity          = "ACTIVITY"
	TypeLive              = "LIVE"
	TypeMarket            = "MARKET"
	TypeDocumentReminders = "DOCUMENT_REMINDERS"
	TypeUserReport        = "USER_REPORT"
	TypeModeration        = "MODERATION"
)

var validTypes = map[string]struct{}{
	TypeAlert:             {},
	TypeReminder:          {},
	TypeActivity:          {},
	TypeLive:              {},
	TypeMarket:            {},
	TypeDocumentReminders: {},
	TypeUserReport:        {},
	TypeModeration:        {},
}

func IsValidType(t string) bool {
	_, ok := validTypes[t]
	return ok
}

type Notification struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"          json:"_id"`
	Receiver     primitive.ObjectID  `bson:"receiver"               json:"receiver"`
	Sender       *primitive.ObjectID `bson:"sender,omitempty"       json:"sender,omitempty"`
	Message      string              `bson:"message"                json:"message"`
	Type         string              `bson:"type"                   json:"type"`
	RedirectLink string              `bson:"redirectLink,omitempty" json:"redirectLink,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt"              json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt"              json:"updatedAt"`
}

// Setting toggles delivery of one notification type globally.
type Setting struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name"          json:"name"`
	Status    bool               `bson:"status"        json:"status"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"     json:"updatedAt"`
}
