// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/farrior-homes-api/internal/core"
	"github.com/carterperez-dev/farrior-homes-api/internal/middleware"
	"github.com/carterperez-dev/farrior-homes-api/internal/user"
)

type Handler struct {
	service     *Service
	userService *user.Service
	validator   *validator.Validate
}

func NewHandler(service *Service, userService *user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
		validator:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/google", h.GoogleLogin)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.GetMe)
			r.Patch("/me", h.UpdateMe)
			r.Post("/change-password", h.ChangePassword)
		})
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	u, err := h.service.Register(r.Context(), req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.Created(w, r, "User registered successfully", u)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.handleLoginError(w, r, err)
		return
	}

	core.OK(w, r, "Login successful", resp)
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	resp, err := h.service.GoogleLogin(r.Context(), req)
	if err != nil {
		h.handleLoginError(w, r, err)
		return
	}

	core.OK(w, r, "Login successful", resp)
}

func (h *Handler) handleLoginError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		core.JSONError(
			w,
			r,
			core.UnauthorizedError("invalid email or password"),
		)
	case errors.Is(err, ErrAccountSuspended):
		core.JSONError(
			w,
			r,
			core.UnauthorizedError(
				"your account has been suspended, please contact support",
			),
		)
	default:
		core.JSONError(w, r, err)
	}
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, r, "")
		return
	}

	u, err := h.service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Profile retrieved successfully", u)
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, r, "")
		return
	}

	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	u, err := h.userService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Profile updated successfully", u)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, r, "")
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, r, err)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, req); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.JSONError(
				w,
				r,
				core.UnauthorizedError("current password is incorrect"),
			)
			return
		}
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Password changed successfully", nil)
}
