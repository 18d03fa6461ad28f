// AngelaMos | 2026
// authz_test.go

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

var (
	anonymous = Identity{}
	member    = Identity{UserID: "u1", Email: "u1@example.com", Role: RoleUser}
	admin     = Identity{UserID: "a1", Email: "a1@example.com", Role: RoleAdmin}
)

func TestRequire(t *testing.T) {
	tests := []struct {
		name       string
		identity   Identity
		capability Capability
		wantStatus int
	}{
		{"anonymous is unauthorized", anonymous, CapUsersManage, 401},
		{"member is forbidden", member, CapUsersManage, 403},
		{"admin passes", admin, CapUsersManage, 0},
		{"admin passes moderation", admin, CapModerateProperties, 0},
		{"unknown capability fails closed for member", member, Capability("made:up"), 403},
		{"unknown capability fails closed for admin", admin, Capability("made:up"), 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(tt.identity, tt.capability)
			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				return
			}

			var appErr *core.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.Status)
		})
	}
}

func TestAdvisoryNeverErrors(t *testing.T) {
	assert.False(t, Advisory(anonymous, CapModerateProperties))
	assert.False(t, Advisory(member, CapModerateProperties))
	assert.True(t, Advisory(admin, CapModerateProperties))
}

func TestRequireOwnerOr(t *testing.T) {
	tests := []struct {
		name       string
		identity   Identity
		ownerID    string
		wantStatus int
	}{
		{"anonymous is unauthorized", anonymous, "u1", 401},
		{"owner passes without capability", member, "u1", 0},
		{"non-owner member is forbidden", member, "other", 403},
		{"admin overrides ownership", admin, "other", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOwnerOr(
				tt.identity,
				tt.ownerID,
				CapModerateProperties,
			)
			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				return
			}

			var appErr *core.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.Status)
		})
	}
}

func TestIdentityPredicates(t *testing.T) {
	assert.True(t, anonymous.IsAnonymous())
	assert.False(t, member.IsAnonymous())
	assert.False(t, member.IsAdmin())
	assert.True(t, admin.IsAdmin())
}
