// AngelaMos | 2026
// gateway.go

package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
	"github.com/stripe/stripe-go/v72/webhook"

	"github.com/carterperez-dev/farrior-homes-api/internal/config"
)

// WebhookEvent is the closed set of things a webhook delivery can mean to
// this service. The dispatcher switches over these variants; anything the
// gateway does not recognize arrives as UnhandledEvent and is acknowledged
// without touching state.
type WebhookEvent interface {
	isWebhookEvent()
}

// CheckoutCompleted correlates back to a payment through the checkout
// session's client reference id.
type CheckoutCompleted struct {
	PaymentID       string
	PaymentIntentID string
}

type CheckoutExpired struct {
	PaymentID string
}

type UnhandledEvent struct {
	Type string
}

func (CheckoutCompleted) isWebhookEvent() {}
func (CheckoutExpired) isWebhookEvent()   {}
func (UnhandledEvent) isWebhookEvent()    {}

type CheckoutParams struct {
	PaymentID  string
	UserID     string
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type Gateway interface {
	CreateCheckoutSession(
		ctx context.Context,
		params CheckoutParams,
	) (*CheckoutSession, error)
	ParseWebhookEvent(payload []byte, signature string) (WebhookEvent, error)
}

type stripeGateway struct {
	priceID       string
	webhookSecret string
}

func NewStripeGateway(cfg config.StripeConfig) Gateway {
	stripe.Key = cfg.SecretKey

	return &stripeGateway{
		priceID:       cfg.PriceID,
		webhookSecret: cfg.WebhookSecret,
	}
}

func (g *stripeGateway) CreateCheckoutSession(
	ctx context.Context,
	params CheckoutParams,
) (*CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode: stripe.String(
			string(stripe.CheckoutSessionModePayment),
		),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(g.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(params.SuccessURL),
		CancelURL:         stripe.String(params.CancelURL),
		ClientReferenceID: stripe.String(params.PaymentID),
	}
	sessionParams.AddMetadata("userId", params.UserID)

	sess, err := session.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("create stripe checkout session: %w", err)
	}

	return &CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// ParseWebhookEvent verifies the signature over the exact raw bytes before
// reading anything out of the payload.
func (g *stripeGateway) ParseWebhookEvent(
	payload []byte,
	signature string,
) (WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("decode checkout session: %w", err)
		}

		completed := CheckoutCompleted{
			PaymentID: sess.ClientReferenceID,
		}
		if sess.PaymentIntent != nil {
			completed.PaymentIntentID = sess.PaymentIntent.ID
		}

		return completed, nil

	case "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("decode checkout session: %w", err)
		}

		return CheckoutExpired{PaymentID: sess.ClientReferenceID}, nil

	default:
		return UnhandledEvent{Type: string(event.Type)}, nil
	}
}
