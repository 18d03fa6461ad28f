// AngelaMos | 2026
// service_test.go

package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/farrior-homes-api/internal/authz"
	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

type memoryRepo struct {
	offerings map[primitive.ObjectID]*Offering
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{offerings: make(map[primitive.ObjectID]*Offering)}
}

func (r *memoryRepo) Create(ctx context.Context, offering *Offering) error {
	offering.ID = primitive.NewObjectID()
	offering.CreatedAt = time.Now().UTC()
	offering.UpdatedAt = offering.CreatedAt
	copied := *offering
	r.offerings[offering.ID] = &copied
	return nil
}

func (r *memoryRepo) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*Offering, error) {
	o, ok := r.offerings[id]
	if !ok {
		return nil, fmt.Errorf("get service: %w", core.ErrNotFound)
	}
	copied := *o
	return &copied, nil
}

func (r *memoryRepo) List(
	ctx context.Context,
	page core.PageQuery,
) ([]Offering, int64, error) {
	out := make([]Offering, 0, len(r.offerings))
	for _, o := range r.offerings {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *memoryRepo) UpdateFields(
	ctx context.Context,
	id primitive.ObjectID,
	fields bson.M,
) (*Offering, error) {
	o, ok := r.offerings[id]
	if !ok {
		return nil, fmt.Errorf("update service: %w", core.ErrNotFound)
	}
	if title, ok := fields["title"].(string); ok {
		o.Title = title
	}
	if description, ok := fields["description"].([]DescriptionItem); ok {
		o.Description = description
	}
	copied := *o
	return &copied, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.offerings[id]; !ok {
		return fmt.Errorf("delete service: %w", core.ErrNotFound)
	}
	delete(r.offerings, id)
	return nil
}

var (
	adminIdentity  = authz.Identity{UserID: "a1", Role: authz.RoleAdmin}
	memberIdentity = authz.Identity{UserID: "u1", Role: authz.RoleUser}
)

func createRequest() CreateOfferingRequest {
	return CreateOfferingRequest{
		Title:    "Property Management",
		SubTitle: "Full-service management for owners",
		Description: []DescriptionItemInput{
			{Text: "Tenant screening"},
			{Text: "Rent collection"},
		},
	}
}

func TestCreateRequiresCatalogCapability(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), memberIdentity, createRequest())
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)

	_, err = svc.Create(context.Background(), authz.Identity{}, createRequest())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Status)

	assert.Empty(t, repo.offerings)
}

func TestCreateAssignsDescriptionItemIDs(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	offering, err := svc.Create(
		context.Background(),
		adminIdentity,
		createRequest(),
	)
	require.NoError(t, err)

	require.Len(t, offering.Description, 2)
	for _, item := range offering.Description {
		assert.False(t, item.ID.IsZero())
		assert.NotEmpty(t, item.Text)
	}
}

func TestCreatePreservesProvidedItemIDs(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	existing := primitive.NewObjectID()
	req := createRequest()
	req.Description = []DescriptionItemInput{
		{ID: existing.Hex(), Text: "Tenant screening"},
	}

	offering, err := svc.Create(context.Background(), adminIdentity, req)
	require.NoError(t, err)

	require.Len(t, offering.Description, 1)
	assert.Equal(t, existing, offering.Description[0].ID)
}

func TestCreateCapsDescriptionItems(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	req := createRequest()
	req.Description = []DescriptionItemInput{
		{Text: "one"}, {Text: "two"}, {Text: "three"},
		{Text: "four"}, {Text: "five"},
	}

	_, err := svc.Create(context.Background(), adminIdentity, req)
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestCreateRejectsMalformedItemID(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	req := createRequest()
	req.Description = []DescriptionItemInput{{ID: "zzz", Text: "bad id"}}

	_, err := svc.Create(context.Background(), adminIdentity, req)
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestListIsPublic(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), adminIdentity, createRequest())
	require.NoError(t, err)

	offerings, pagination, err := svc.List(
		context.Background(),
		core.PageQuery{Page: 1, Limit: 10},
	)
	require.NoError(t, err)
	assert.Len(t, offerings, 1)
	assert.Equal(t, int64(1), pagination.Total)
}

func TestUpdateAndDeleteRequireCapability(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	created, err := svc.Create(
		context.Background(),
		adminIdentity,
		createRequest(),
	)
	require.NoError(t, err)

	title := "Renamed"
	_, err = svc.Update(
		context.Background(),
		memberIdentity,
		created.ID.Hex(),
		UpdateOfferingRequest{Title: &title},
	)
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)

	err = svc.Delete(context.Background(), memberIdentity, created.ID.Hex())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)

	updated, err := svc.Update(
		context.Background(),
		adminIdentity,
		created.ID.Hex(),
		UpdateOfferingRequest{Title: &title},
	)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	require.NoError(
		t,
		svc.Delete(context.Background(), adminIdentity, created.ID.Hex()),
	)
	assert.Empty(t, repo.offerings)
}
