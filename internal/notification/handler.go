// AngelaMos | 2026
// handler.go

package notification

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
	r.Route("/notification", func(r chi.Router) {
		r.Use(authenticator)
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{notificationID}", h.Get)
		r.Delete("/{notificationID}", h.Delete)
	})

	r.Route("/notification-settings", func(r chi.Router) {
		r.Get("/", h.ListSettings)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.CreateSetting)
			r.Patch("/{settingID}", h.UpdateSetting)
			r.Delete("/{settingID}", h.DeleteSetting)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	var req CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	notification, err := h.service.Create(r.Context(), identity, req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.Created(w, r, "Notification created successfully", notification)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())
	page := core.ParsePageQuery(r)

	notifications, pagination, err := h.service.List(
		r.Context(),
		identity,
		page,
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(
		w,
		r,
		"Notifications retrieved successfully",
		ListNotificationsResponse{
			Notifications: notifications,
			Pagination:    pagination,
		},
	)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	notification, err := h.service.Get(
		r.Context(),
		identity,
		chi.URLParam(r, "notificationID"),
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Notification retrieved successfully", notification)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	err := h.service.Delete(
		r.Context(),
		identity,
		chi.URLParam(r, "notificationID"),
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Notification deleted successfully", nil)
}

func (h *Handler) CreateSetting(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	var req CreateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	setting, err := h.service.CreateSetting(r.Context(), identity, req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.Created(w, r, "Notification setting created successfully", setting)
}

func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.ListSettings(r.Context())
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Notification settings retrieved successfully", settings)
}

func (h *Handler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	var req UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	setting, err := h.service.UpdateSetting(
		r.Context(),
		identity,
		chi.URLParam(r, "settingID"),
		req,
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Notification setting updated successfully", setting)
}

func (h *Handler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())

	err := h.service.DeleteSetting(
		r.Context(),
		identity,
		chi.URLParam(r, "settingID"),
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Notification setting deleted successfully", nil)
}
