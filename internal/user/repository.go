// AngelaMos | 2026
// repository.go

package user

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

const collectionName = "users"

type ListUsersParams struct {
	Page   core.PageQuery
	Search string
}

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*User, error)
	List(ctx context.Context, params ListUsersParams) ([]User, int64, error)
	UpdateFields(
		ctx context.Context,
		id primitive.ObjectID,
		fields bson.M,
	) (*User, error)
	UpdatePassword(
		ctx context.Context,
		id primitive.ObjectID,
		passwordHash string,
	) error
	SetSuspended(
		ctx context.Context,
		id primitive.ObjectID,
		suspended bool,
	) (*User, error)
	SetSubscribed(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &repository{collection: db.Collection(collectionName)}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Partial: federated-only accounts have no phone, and two
			// missing phones must not collide.
			Keys: bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{
					{Key: "phone", Value: bson.D{
						{Key: "$exists", Value: true},
						{Key: "$gt", Value: ""},
					}},
				}),
		},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}

	return nil
}

func (r *repository) Create(ctx context.Context, user *User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "get user")
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return r.findOne(ctx, bson.M{"email": email}, "get user by email")
}

func (r *repository) GetByGoogleID(
	ctx context.Context,
	googleID string,
) (*User, error) {
	return r.findOne(ctx, bson.M{"googleId": googleID}, "get user by google id")
}

func (r *repository) findOne(
	ctx context.Context,
	filter bson.M,
	op string,
) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int64, error) {
	filter := bson.M{}
	if params.Search != "" {
		pattern := primitive.Regex{
			Pattern: regexp.QuoteMeta(params.Search),
			Options: "i",
		}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
			bson.M{"phone": pattern},
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(params.Page.Skip()).
		SetLimit(int64(params.Page.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor cleanup

	users := make([]User, 0, params.Page.Limit)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("decode users: %w", err)
	}

	return users, total, nil
}

func (r *repository) UpdateFields(
	ctx context.Context,
	id primitive.ObjectID,
	fields bson.M,
) (*User, error) {
	fields["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		opts,
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("update user: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return &user, nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id primitive.ObjectID,
	passwordHash string,
) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"password":  passwordHash,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) SetSuspended(
	ctx context.Context,
	id primitive.ObjectID,
	suspended bool,
) (*User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"isSuspended": suspended,
			"updatedAt":   time.Now().UTC(),
		}},
		opts,
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("set suspended: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("set suspended: %w", err)
	}

	return &user, nil
}

// SetSubscribed is idempotent: flipping an already-subscribed user is a
// matched no-op, which is what webhook redelivery relies on.
func (r *repository) SetSubscribed(
	ctx context.Context,
	id primitive.ObjectID,
) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"isSubscribed": true,
			"updatedAt":    time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("set subscribed: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("set subscribed: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}

	return nil
}
