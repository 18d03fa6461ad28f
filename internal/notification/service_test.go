// AngelaMos | 2026
// service_test.go

package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/farrior-homes-api/internal/authz"
	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

type memoryRepo struct {
	notifications map[primitive.ObjectID]*Notification
	settings      map[primitive.ObjectID]*Setting
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		notifications: make(map[primitive.ObjectID]*Notification),
		settings:      make(map[primitive.ObjectID]*Setting),
	}
}

func (r *memoryRepo) Create(ctx context.Context, n *Notification) error {
	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now().UTC()
	n.UpdatedAt = n.CreatedAt
	copied := *n
	r.notifications[n.ID] = &copied
	return nil
}

func (r *memoryRepo) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, fmt.Errorf("get notification: %w", core.ErrNotFound)
	}
	copied := *n
	return &copied, nil
}

func (r *memoryRepo) ListForReceiver(
	ctx context.Context,
	receiver primitive.ObjectID,
	page core.PageQuery,
) ([]Notification, int64, error) {
	out := make([]Notification, 0)
	for _, n := range r.notifications {
		if n.Receiver == receiver {
			out = append(out, *n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.notifications[id]; !ok {
		return fmt.Errorf("delete notification: %w", core.ErrNotFound)
	}
	delete(r.notifications, id)
	return nil
}

func (r *memoryRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *memoryRepo) CreateSetting(ctx context.Context, s *Setting) error {
	for _, existing := range r.settings {
		if existing.Name == s.Name {
			return fmt.Errorf("create setting: %w", core.ErrDuplicateKey)
		}
	}
	s.ID = primitive.NewObjectID()
	copied := *s
	r.settings[s.ID] = &copied
	return nil
}

func (r *memoryRepo) ListSettings(ctx context.Context) ([]Setting, error) {
	out := make([]Setting, 0, len(r.settings))
	for _, s := range r.settings {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memoryRepo) UpdateSetting(
	ctx context.Context,
	id primitive.ObjectID,
	status bool,
) (*Setting, error) {
	s, ok := r.settings[id]
	if !ok {
		return nil, fmt.Errorf("update setting: %w", core.ErrNotFound)
	}
	s.Status = status
	copied := *s
	return &copied, nil
}

func (r *memoryRepo) DeleteSetting(
	ctx context.Context,
	id primitive.ObjectID,
) error {
	if _, ok := r.settings[id]; !ok {
		return fmt.Errorf("delete setting: %w", core.ErrNotFound)
	}
	delete(r.settings, id)
	return nil
}

var adminIdentity = authz.Identity{
	UserID: primitive.NewObjectID().Hex(),
	Role:   authz.RoleAdmin,
}

func memberIdentity() (authz.Identity, primitive.ObjectID) {
	id := primitive.NewObjectID()
	return authz.Identity{UserID: id.Hex(), Role: authz.RoleUser}, id
}

func TestCreateRequiresSendCapability(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	member, memberID := memberIdentity()

	_, err := svc.Create(context.Background(), member, CreateNotificationRequest{
		Receiver: memberID.Hex(),
		Message:  "hello",
		Type:     TypeAlert,
	})
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)

	n, err := svc.Create(context.Background(), adminIdentity, CreateNotificationRequest{
		Receiver: memberID.Hex(),
		Message:  "hello",
		Type:     TypeAlert,
	})
	require.NoError(t, err)
	assert.Equal(t, memberID, n.Receiver)
	assert.Nil(t, n.Sender)
}

func TestCreateValidatesObjectIDs(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), adminIdentity, CreateNotificationRequest{
		Receiver: "not-an-id",
		Message:  "hello",
		Type:     TypeAlert,
	})
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	_, err = svc.Create(context.Background(), adminIdentity, CreateNotificationRequest{
		Receiver: primitive.NewObjectID().Hex(),
		Sender:   "not-an-id",
		Message:  "hello",
		Type:     TypeAlert,
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestListIsScopedToReceiver(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	alice, aliceID := memberIdentity()
	_, bobID := memberIdentity()

	for _, receiver := range []primitive.ObjectID{aliceID, aliceID, bobID} {
		_, err := svc.Create(
			context.Background(),
			adminIdentity,
			CreateNotificationRequest{
				Receiver: receiver.Hex(),
				Message:  "hello",
				Type:     TypeReminder,
			},
		)
		require.NoError(t, err)
	}

	listed, pagination, err := svc.List(
		context.Background(),
		alice,
		core.PageQuery{Page: 1, Limit: 10},
	)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, int64(2), pagination.Total)
}

func TestGetWidensForSendersOnly(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	alice, aliceID := memberIdentity()
	bob, _ := memberIdentity()

	created, err := svc.Create(
		context.Background(),
		adminIdentity,
		CreateNotificationRequest{
			Receiver: aliceID.Hex(),
			Message:  "hello",
			Type:     TypeActivity,
		},
	)
	require.NoError(t, err)

	// The receiver reads their own notification.
	got, err := svc.Get(context.Background(), alice, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Another member cannot.
	_, err = svc.Get(context.Background(), bob, created.ID.Hex())
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)

	// An admin can.
	_, err = svc.Get(context.Background(), adminIdentity, created.ID.Hex())
	assert.NoError(t, err)
}

func TestDeleteAllowsReceiverAndAdmin(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	alice, aliceID := memberIdentity()
	bob, _ := memberIdentity()

	created, err := svc.Create(
		context.Background(),
		adminIdentity,
		CreateNotificationRequest{
			Receiver: aliceID.Hex(),
			Message:  "hello",
			Type:     TypeMarket,
		},
	)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), bob, created.ID.Hex())
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)

	require.NoError(
		t,
		svc.Delete(context.Background(), alice, created.ID.Hex()),
	)
	assert.Empty(t, repo.notifications)
}

func TestSettingsLifecycle(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	member, _ := memberIdentity()
	enabled := true

	// Mutations are admin-only.
	_, err := svc.CreateSetting(context.Background(), member, CreateSettingRequest{
		Name:   TypeAlert,
		Status: &enabled,
	})
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)

	setting, err := svc.CreateSetting(
		context.Background(),
		adminIdentity,
		CreateSettingRequest{Name: TypeAlert, Status: &enabled},
	)
	require.NoError(t, err)
	assert.True(t, setting.Status)

	// Duplicate names are rejected.
	_, err = svc.CreateSetting(
		context.Background(),
		adminIdentity,
		CreateSettingRequest{Name: TypeAlert, Status: &enabled},
	)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)

	// Reading is public.
	settings, err := svc.ListSettings(context.Background())
	require.NoError(t, err)
	assert.Len(t, settings, 1)

	disabled := false
	updated, err := svc.UpdateSetting(
		context.Background(),
		adminIdentity,
		setting.ID.Hex(),
		UpdateSettingRequest{Status: &disabled},
	)
	require.NoError(t, err)
	assert.False(t, updated.Status)

	require.NoError(
		t,
		svc.DeleteSetting(context.Background(), adminIdentity, setting.ID.Hex()),
	)
	assert.Empty(t, repo.settings)
}

func TestIsValidType(t *testing.T) {
	for _, valid := range []string{
		TypeAlert, TypeReminder, TypeActivity, TypeLive,
		TypeMarket, TypeDocumentReminders, TypeUserReport, TypeModeration,
	} {
		assert.True(t, IsValidType(valid), valid)
	}

	assert.False(t, IsValidType("EMAIL"))
	assert.False(t, IsValidType(""))
}
