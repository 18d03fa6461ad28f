// AngelaMos | 2026
// repository.go

package property

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

const collectionName = "properties"

type ListPropertiesParams struct {
	Page core.PageQuery
	// PostedOnly hides drafts from callers without moderation visibility.
	PostedOnly bool
}

type Repository interface {
	Create(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Property, error)
	List(
		ctx context.Context,
		params ListPropertiesParams,
	) ([]Property, int64, error)
	UpdateFields(
		ctx context.Context,
		id primitive.ObjectID,
		fields bson.M,
	) (*Property, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &repository{collection: db.Collection(collectionName)}
}

func (r *repository) Create(ctx context.Context, property *Property) error {
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, property)
	if err != nil {
		return fmt.Errorf("create property: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		property.ID = oid
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*Property, error) {
	var property Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get property: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}

	return &property, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListPropertiesParams,
) ([]Property, int64, error) {
	filter := bson.M{}
	if params.PostedOnly {
		filter["isPosted"] = true
	}
	if params.Page.Search != "" {
		pattern := primitive.Regex{
			Pattern: regexp.QuoteMeta(params.Page.Search),
			Options: "i",
		}
		filter["$or"] = bson.A{
			bson.M{"propertyName": pattern},
			bson.M{"address": pattern},
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(params.Page.Skip()).
		SetLimit(int64(params.Page.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor cleanup

	properties := make([]Property, 0, params.Page.Limit)
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, 0, fmt.Errorf("decode properties: %w", err)
	}

	return properties, total, nil
}

func (r *repository) UpdateFields(
	ctx context.Context,
	id primitive.ObjectID,
	fields bson.M,
) (*Property, error) {
	fields["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var property Property
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		opts,
	).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update property: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}

	return &property, nil
}

func (r *repository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("delete property: %w", core.ErrNotFound)
	}

	return nil
}
