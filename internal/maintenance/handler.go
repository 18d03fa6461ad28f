// AngelaMos | 2026
// handler.go

package maintenance

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/farrior-homes-api/internal/core"
	"github.com/carterperez-dev/farrior-homes-api/internal/middleware"
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
	r.Route("/maintenance", func(r chi.Router) {
		r.Use(authenticator)
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{maintenanceID}", h.Get)
		r.Patch("/{maintenanceID}", h.Update)
		r.Delete("/{maintenanceID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	maintenance, err := h.service.Create(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.Created(w, r, "Maintenance task created successfully", maintenance)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := core.ParsePageQuery(r)

	maintenances, pagination, err := h.service.List(
		r.Context(),
		middleware.GetUserID(r.Context()),
		page,
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(
		w,
		r,
		"Maintenance tasks retrieved successfully",
		ListMaintenancesResponse{
			Maintenances: maintenances,
			Pagination:   pagination,
		},
	)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	maintenance, err := h.service.Get(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "maintenanceID"),
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Maintenance task retrieved successfully", maintenance)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	maintenance, err := h.service.Update(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "maintenanceID"),
		req,
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Maintenance task updated successfully", maintenance)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "maintenanceID"),
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Maintenance task deleted successfully", nil)
}
