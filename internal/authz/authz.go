// AngelaMos | 2026
// authz.go

package authz

import (
	"context"

	"github.com/carterperez-dev/farrior-homes-api/internal/core"
	"github.com/carterperez-dev/farrior-homes-api/internal/middleware"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Capability names the permissions operations check explicitly, instead of
// scattering raw role comparisons through the handlers.
type Capability string

const (
	CapUsersManage        Capability = "users:manage"
	CapCatalogManage      Capability = "catalog:manage"
	CapNotificationsSend  Capability = "notifications:send"
	CapSettingsManage     Capability = "settings:manage"
	CapPaymentsRead       Capability = "payments:read"
	CapStatsRead          Capability = "stats:read"
	CapModerateProperties Capability = "properties:moderate"
)

// Identity is the authenticated caller as resolved by the Authenticator
// middleware. A zero Identity means the request was anonymous.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

func (id Identity) IsAnonymous() bool {
	return id.UserID == ""
}

func FromContext(ctx context.Context) Identity {
	return Identity{
		UserID: middleware.GetUserID(ctx),
		Email:  middleware.GetUserEmail(ctx),
		Role:   middleware.GetUserRole(ctx),
	}
}

var adminCapabilities = map[Capability]struct{}{
	CapUsersManage:        {},
	CapCatalogManage:      {},
	CapNotificationsSend:  {},
	CapSettingsManage:     {},
	CapPaymentsRead:       {},
	CapStatsRead:          {},
	CapModerateProperties: {},
}

func has(id Identity, cap Capability) bool {
	if id.IsAnonymous() {
		return false
	}

	if _, adminOnly := adminCapabilities[cap]; adminOnly {
		return id.IsAdmin()
	}

	return false
}

// Require is the hard gate: every privileged operation calls it first and
// stops on error. Unknown capabilities fail closed.
func Require(id Identity, cap Capability) error {
	if id.IsAnonymous() {
		return core.UnauthorizedError("")
	}

	if !has(id, cap) {
		return core.ForbiddenError("")
	}

	return nil
}

// Advisory answers a capability question without failing the request. It
// exists only to widen read visibility (admins seeing unposted properties)
// and must never gate a mutation.
func Advisory(id Identity, cap Capability) bool {
	return has(id, cap)
}

// RequireOwnerOr passes when the caller owns the resource or holds the
// override capability. Used for owner-scoped mutations with admin override.
func RequireOwnerOr(id Identity, ownerID string, cap Capability) error {
	if id.IsAnonymous() {
		return core.UnauthorizedError("")
	}

	if id.UserID == ownerID {
		return nil
	}

	if has(id, cap) {
		return nil
	}

	return core.ForbiddenError("")
}
