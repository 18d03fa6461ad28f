// AngelaMos | 2026
// entity.go

package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Payment is a lifetime-subscription purchase attempt. A row is born PENDING
// and moves to COMPLETED or FAILED exactly once; every transition filters on
// the current PENDING status so webhook redelivery cannot re-apply it.
type Payment struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty"                     json:"_id"`
	User                    primitive.ObjectID `bson:"user"                              json:"user"`
	Amount                  int64              `bson:"amount"                            json:"amount"`
	Currency                string             `bson:"currency"                          json:"currency"`
	Status                  string             `bson:"status"                            json:"status"`
	TransactionID           string             `bson:"transactionId"                     json:"transactionId"`
	StripeCheckoutSessionID string             `bson:"stripeCheckoutSessionId,omitempty" json:"stripeCheckoutSessionId,omitempty"`
	StripePaymentIntentID   string             `bson:"stripePaymentIntentId,omitempty"   json:"stripePaymentIntentId,omitempty"`
	LifetimeAccessGranted   bool               `bson:"lifetimeAccessGranted"             json:"lifetimeAccessGranted"`
	PaidAt                  *time.Time         `bson:"paidAt,omitempty"                  json:"paidAt,omitempty"`
	CreatedAt               time.Time          `bson:"createdAt"                         json:"createdAt"`
	UpdatedAt               time.Time          `bson:"updatedAt"                         json:"updatedAt"`
}
