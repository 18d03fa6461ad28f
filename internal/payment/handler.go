// AngelaMos | 2026
// handler.go

package payment

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/farrior-homes-api/internal/authz"
	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

// maxWebhookBody bounds the raw payload read for signature verification.
const maxWebhookBody = 1 << 20

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/payment", func(r chi.Router) {
		// The checkout frontend calls this before the user has a session,
		// so it stays unauthenticated; the service validates the target
		// user instead.
		r.Post("/create-checkout-session", h.CreateCheckoutSession)
		r.Post("/webhook", h.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/", h.List)
			r.Get("/{paymentID}", h.Get)
		})
	})
}

func (h *Handler) CreateCheckoutSession(
	w http.ResponseWriter,
	r *http.Request,
) {
	var req CreateCheckoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	resp, err := h.service.CreateCheckoutSession(r.Context(), req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.Created(w, r, "Checkout session created successfully", resp)
}

func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		core.BadRequest(w, r, "unable to read request body")
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		core.BadRequest(w, r, "missing Stripe-Signature header")
		return
	}

	if err := h.service.HandleWebhook(r.Context(), payload, signature); err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Webhook processed successfully", nil)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())
	if err := authz.Require(identity, authz.CapPaymentsRead); err != nil {
		core.JSONError(w, r, err)
		return
	}

	page := core.ParsePageQuery(r)

	payments, pagination, err := h.service.List(r.Context(), page)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Payments retrieved successfully", ListPaymentsResponse{
		Payments:   payments,
		Pagination: pagination,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())
	if err := authz.Require(identity, authz.CapPaymentsRead); err != nil {
		core.JSONError(w, r, err)
		return
	}

	payment, err := h.service.Get(r.Context(), chi.URLParam(r, "paymentID"))
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Payment retrieved successfully", payment)
}
