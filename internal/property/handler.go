// AngelaMos | 2026
// handler.go

package property

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
	optionalAuth func(http.Handler) http.Handler,
) {
	r.Route("/property", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/", h.List)
			r.Get("/{propertyID}", h.Get)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.Create)
			r.Patch("/{propertyID}", h.Update)
			r.Delete("/{propertyID}", h.Delete)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	var req CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	property, err := h.service.Create(r.Context(), identity, req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.Created(w, r, "Property created successfully", property)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())
	page := core.ParsePageQuery(r)

	properties, pagination, err := h.service.List(r.Context(), identity, page)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Properties retrieved successfully", ListPropertiesResponse{
		Properties: properties,
		Pagination: pagination,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	property, err := h.service.Get(r.Context(), chi.URLParam(r, "propertyID"))
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Property retrieved successfully", property)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	var req UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	property, err := h.service.Update(
		r.Context(),
		identity,
		chi.URLParam(r, "propertyID"),
		req,
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Property updated successfully", property)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	err := h.service.Delete(
		r.Context(),
		identity,
		chi.URLParam(r, "propertyID"),
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Property deleted successfully", nil)
}
