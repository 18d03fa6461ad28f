// AngelaMos | 2026
// repository.go

package catalog

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

const collectionName = "services"

type Repository interface {
	Create(ctx context.Context, offering *Offering) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Offering, error)
	List(ctx context.Context, page core.PageQuery) ([]Offering, int64, error)
	UpdateFields(
		ctx context.Context,
		id primitive.ObjectID,
		fields bson.M,
	) (*Offering, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &repository{collection: db.Collection(collectionName)}
}

func (r *repository) Create(ctx context.Context, offering *Offering) error {
	now := time.Now().UTC()
	offering.CreatedAt = now
	offering.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, offering)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		offering.ID = oid
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*Offering, error) {
	var offering Offering
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&offering)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get service: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	return &offering, nil
}

func (r *repository) List(
	ctx context.Context,
	page core.PageQuery,
) ([]Offering, int64, error) {
	filter := bson.M{}
	if page.Search != "" {
		pattern := primitive.Regex{
			Pattern: regexp.QuoteMeta(page.Search),
			Options: "i",
		}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"subTitle": pattern},
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list services: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor cleanup

	offerings := make([]Offering, 0, page.Limit)
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, 0, fmt.Errorf("decode services: %w", err)
	}

	return offerings, total, nil
}

func (r *repository) UpdateFields(
	ctx context.Context,
	id primitive.ObjectID,
	fields bson.M,
) (*Offering, error) {
	fields["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var offering Offering
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		opts,
	).Decode(&offering)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update service: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	return &offering, nil
}

func (r *repository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("delete service: %w", core.ErrNotFound)
	}

	return nil
}
