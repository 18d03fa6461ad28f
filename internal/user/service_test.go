// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

type memoryRepo struct {
	users map[primitive.ObjectID]*User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[primitive.ObjectID]*User)}
}

func (r *memoryRepo) add(u *User) primitive.ObjectID {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.ID] = u
	return u.ID
}

func (r *memoryRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *memoryRepo) Create(ctx context.Context, u *User) error {
	r.add(u)
	return nil
}

func (r *memoryRepo) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

func (r *memoryRepo) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (r *memoryRepo) GetByGoogleID(
	ctx context.Context,
	googleID string,
) (*User, error) {
	for _, u := range r.users {
		if u.GoogleID == googleID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("get user by google id: %w", core.ErrNotFound)
}

func (r *memoryRepo) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int64, error) {
	out := make([]User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *memoryRepo) UpdateFields(
	ctx context.Context,
	id primitive.ObjectID,
	fields bson.M,
) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	if phone, ok := fields["phone"].(string); ok {
		u.Phone = phone
	}
	u.UpdatedAt = time.Now().UTC()
	copied := *u
	return &copied, nil
}

func (r *memoryRepo) UpdatePassword(
	ctx context.Context,
	id primitive.ObjectID,
	passwordHash string,
) error {
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}
	u.Password = passwordHash
	return nil
}

func (r *memoryRepo) SetSuspended(
	ctx context.Context,
	id primitive.ObjectID,
	suspended bool,
) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("set suspended: %w", core.ErrNotFound)
	}
	u.IsSuspended = suspended
	copied := *u
	return &copied, nil
}

func (r *memoryRepo) SetSubscribed(
	ctx context.Context,
	id primitive.ObjectID,
) error {
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("set subscribed: %w", core.ErrNotFound)
	}
	u.IsSubscribed = true
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}
	delete(r.users, id)
	return nil
}

func TestToggleSuspendFlipsAndRestores(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	id := repo.add(&User{Name: "Ada", Email: "ada@example.com"})

	u, err := svc.ToggleSuspend(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.True(t, u.IsSuspended)

	u, err = svc.ToggleSuspend(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.False(t, u.IsSuspended)
}

func TestUpdateProfileRequiresAtLeastOneField(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	id := repo.add(&User{Name: "Ada"})

	_, err := svc.UpdateProfile(
		context.Background(),
		id.Hex(),
		UpdateProfileRequest{},
	)
	require.Error(t, err)

	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	id := repo.add(&User{Name: "Ada", Phone: "+15551234567"})

	name := "Ada Lovelace"
	u, err := svc.UpdateProfile(
		context.Background(),
		id.Hex(),
		UpdateProfileRequest{Name: &name},
	)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", u.Name)
	assert.Equal(t, "+15551234567", u.Phone)
}

func TestServiceRejectsMalformedIDs(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), "not-an-id")
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	err = svc.Delete(context.Background(), "not-an-id")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestGetUnknownUserReturnsNotFound(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.Get(
		context.Background(),
		primitive.NewObjectID().Hex(),
	)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
