// AngelaMos | 2026
// handler.go

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/farrior-homes-api/internal/authz"
	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/", h.List)
		r.Get("/{userID}", h.Get)
		r.Delete("/{userID}", h.Delete)
		r.Patch("/{userID}/suspend-toggle", h.ToggleSuspend)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())
	if err := authz.Require(identity, authz.CapUsersManage); err != nil {
		core.JSONError(w, r, err)
		return
	}

	page := core.ParsePageQuery(r)

	users, pagination, err := h.service.List(r.Context(), page)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "Users retrieved successfully", ListUsersResponse{
		Users:      users,
		Pagination: pagination,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())
	if err := authz.Require(identity, authz.CapUsersManage); err != nil {
		core.JSONError(w, r, err)
		return
	}

	user, err := h.service.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "User retrieved successfully", user)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())
	if err := authz.Require(identity, authz.CapUsersManage); err != nil {
		core.JSONError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
		core.JSONError(w, r, err)
		return
	}

	core.OK(w, r, "User deleted successfully", nil)
}

func (h *Handler) ToggleSuspend(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())
	if err := authz.Require(identity, authz.CapUsersManage); err != nil {
		core.JSONError(w, r, err)
		return
	}

	user, err := h.service.ToggleSuspend(
		r.Context(),
		chi.URLParam(r, "userID"),
	)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	message := "User suspended successfully"
	if !user.IsSuspended {
		message = "User unsuspended successfully"
	}

	core.OK(w, r, message, user)
}
