// AngelaMos | 2026
// gateway_test.go

package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/farrior-homes-api/internal/config"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload produces a Stripe-Signature header value the same way Stripe
// does: HMAC-SHA256 over "<timestamp>.<payload>" keyed by the webhook secret.
func signPayload(t *testing.T, secret string, payload []byte) string {
	t.Helper()

	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)

	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func newTestGateway() Gateway {
	return NewStripeGateway(config.StripeConfig{
		SecretKey:     "sk_test_123",
		PriceID:       "price_123",
		WebhookSecret: testWebhookSecret,
	})
}

func TestParseWebhookEventCheckoutCompleted(t *testing.T) {
	gateway := newTestGateway()

	payload := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_123",
				"object": "checkout.session",
				"client_reference_id": "65a1b2c3d4e5f6a7b8c9d0e1",
				"payment_intent": "pi_123"
			}
		}
	}`)

	event, err := gateway.ParseWebhookEvent(
		payload,
		signPayload(t, testWebhookSecret, payload),
	)
	require.NoError(t, err)

	completed, ok := event.(CheckoutCompleted)
	require.True(t, ok, "expected CheckoutCompleted, got %T", event)
	assert.Equal(t, "65a1b2c3d4e5f6a7b8c9d0e1", completed.PaymentID)
	assert.Equal(t, "pi_123", completed.PaymentIntentID)
}

func TestParseWebhookEventCheckoutExpired(t *testing.T) {
	gateway := newTestGateway()

	payload := []byte(`{
		"id": "evt_2",
		"object": "event",
		"type": "checkout.session.expired",
		"data": {
			"object": {
				"id": "cs_test_456",
				"object": "checkout.session",
				"client_reference_id": "65a1b2c3d4e5f6a7b8c9d0e2"
			}
		}
	}`)

	event, err := gateway.ParseWebhookEvent(
		payload,
		signPayload(t, testWebhookSecret, payload),
	)
	require.NoError(t, err)

	expired, ok := event.(CheckoutExpired)
	require.True(t, ok, "expected CheckoutExpired, got %T", event)
	assert.Equal(t, "65a1b2c3d4e5f6a7b8c9d0e2", expired.PaymentID)
}

func TestParseWebhookEventUnhandledType(t *testing.T) {
	gateway := newTestGateway()

	payload := []byte(`{
		"id": "evt_3",
		"object": "event",
		"type": "invoice.paid",
		"data": {"object": {}}
	}`)

	event, err := gateway.ParseWebhookEvent(
		payload,
		signPayload(t, testWebhookSecret, payload),
	)
	require.NoError(t, err)

	unhandled, ok := event.(UnhandledEvent)
	require.True(t, ok, "expected UnhandledEvent, got %T", event)
	assert.Equal(t, "invoice.paid", unhandled.Type)
}

func TestParseWebhookEventRejectsBadSignatures(t *testing.T) {
	gateway := newTestGateway()

	payload := []byte(`{
		"id": "evt_4",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_789"}}
	}`)

	tests := []struct {
		name      string
		signature string
	}{
		{"empty header", ""},
		{"garbage header", "not-a-signature"},
		{
			"wrong secret",
			signPayload(t, "whsec_other_secret", payload),
		},
		{
			"stale timestamp",
			func() string {
				ts := time.Now().Add(-time.Hour).Unix()
				mac := hmac.New(sha256.New, []byte(testWebhookSecret))
				fmt.Fprintf(mac, "%d.%s", ts, payload)
				return fmt.Sprintf(
					"t=%d,v1=%s",
					ts,
					hex.EncodeToString(mac.Sum(nil)),
				)
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := gateway.ParseWebhookEvent(payload, tt.signature)
			require.Error(t, err)
			assert.Nil(t, event)
		})
	}
}

func TestParseWebhookEventRejectsTamperedPayload(t *testing.T) {
	gateway := newTestGateway()

	payload := []byte(`{"id":"evt_5","type":"checkout.session.completed","data":{"object":{}}}`)
	signature := signPayload(t, testWebhookSecret, payload)

	tampered := []byte(`{"id":"evt_5","type":"checkout.session.expired","data":{"object":{}}}`)

	event, err := gateway.ParseWebhookEvent(tampered, signature)
	require.Error(t, err)
	assert.Nil(t, event)
}
