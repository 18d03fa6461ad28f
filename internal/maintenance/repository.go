// AngelaMos | 2026
// repository.go

package maintenance

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

const collectionName = "maintenances"

type ListMaintenancesParams struct {
	Page core.PageQuery
	// User scopes every query; maintenance tasks are never visible across
	// accounts.
	User primitive.ObjectID
}

type Repository interface {
	Create(ctx context.Context, maintenance *Maintenance) error
	GetByID(
		ctx context.Context,
		id, userID primitive.ObjectID,
	) (*Maintenance, error)
	List(
		ctx context.Context,
		params ListMaintenancesParams,
	) ([]Maintenance, int64, error)
	UpdateFields(
		ctx context.Context,
		id, userID primitive.ObjectID,
		fields bson.M,
	) (*Maintenance, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &repository{collection: db.Collection(collectionName)}
}

func (r *repository) Create(
	ctx context.Context,
	maintenance *Maintenance,
) error {
	now := time.Now().UTC()
	maintenance.CreatedAt = now
	maintenance.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, maintenance)
	if err != nil {
		return fmt.Errorf("create maintenance: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		maintenance.ID = oid
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id, userID primitive.ObjectID,
) (*Maintenance, error) {
	var maintenance Maintenance
	err := r.collection.FindOne(ctx, bson.M{
		"_id":  id,
		"user": userID,
	}).Decode(&maintenance)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get maintenance: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get maintenance: %w", err)
	}

	return &maintenance, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListMaintenancesParams,
) ([]Maintenance, int64, error) {
	filter := bson.M{"user": params.User}
	if params.Page.Search != "" {
		pattern := primitive.Regex{
			Pattern: regexp.QuoteMeta(params.Page.Search),
			Options: "i",
		}
		filter["$or"] = bson.A{
			bson.M{"task": pattern},
			bson.M{"amenities": pattern},
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count maintenances: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "reminderDate", Value: 1}}).
		SetSkip(params.Page.Skip()).
		SetLimit(int64(params.Page.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list maintenances: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor cleanup

	maintenances := make([]Maintenance, 0, params.Page.Limit)
	if err := cursor.All(ctx, &maintenances); err != nil {
		return nil, 0, fmt.Errorf("decode maintenances: %w", err)
	}

	return maintenances, total, nil
}

func (r *repository) UpdateFields(
	ctx context.Context,
	id, userID primitive.ObjectID,
	fields bson.M,
) (*Maintenance, error) {
	fields["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var maintenance Maintenance
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "user": userID},
		bson.M{"$set": fields},
		opts,
	).Decode(&maintenance)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update maintenance: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update maintenance: %w", err)
	}

	return &maintenance, nil
}

func (r *repository) Delete(
	ctx context.Context,
	id, userID primitive.ObjectID,
) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{
		"_id":  id,
		"user": userID,
	})
	if err != nil {
		return fmt.Errorf("delete maintenance: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("delete maintenance: %w", core.ErrNotFound)
	}

	return nil
}
