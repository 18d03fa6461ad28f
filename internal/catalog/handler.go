// AngelaMos | 2026
// handler.go

package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/farrior-homes-api/internal/authz"
	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

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
	r.Route("/service", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{serviceID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.Create)
			r.Patch("/{serviceID}", h.Update)
			r.Delete("/{serviceID}", h.Delete)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	var req CreateOfferingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	offering, err := h.service.Create(r.Context(), identity, req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.Created(w, r, "Service created successfully", offering)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := core.ParsePageQuery(r)

	offerings, pagination, err := h.service.List(r.Context(), page)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Services retrieved successfully", ListOfferingsResponse{
		Services:   offerings,
		Pagination: pagination,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	offering, err := h.service.Get(r.Context(), chi.URLParam(r, "serviceID"))
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Service retrieved successfully", offering)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	var req UpdateOfferingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	offering, err := h.service.Update(
		r.Context(),
		identity,
		chi.URLParam(r, "serviceID"),
		req,
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Service updated successfully", offering)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	err := h.service.Delete(
		r.Context(),
		identity,
		chi.URLParam(r, "serviceID"),
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Service deleted successfully", nil)
}
