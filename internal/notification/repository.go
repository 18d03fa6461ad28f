// AngelaMos | 2026
// repository.go

package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

const (
	collectionName        = "notifications"
	settingCollectionName = "notification_settings"
)

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByID(
		ctx context.Context,
		id primitive.ObjectID,
	) (*Notification, error)
	ListForReceiver(
		ctx context.Context,
		receiver primitive.ObjectID,
		page core.PageQuery,
	) ([]Notification, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	EnsureIndexes(ctx context.Context) error
	CreateSetting(ctx context.Context, setting *Setting) error
	ListSettings(ctx context.Context) ([]Setting, error)
	UpdateSetting(
		ctx context.Context,
		id primitive.ObjectID,
		status bool,
	) (*Setting, error)
	DeleteSetting(ctx context.Context, id primitive.ObjectID) error
}

type repository struct {
	collection *mongo.Collection
	settings   *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &repository{
		collection: db.Collection(collectionName),
		settings:   db.Collection(settingCollectionName),
	}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.settings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure notification setting indexes: %w", err)
	}

	return nil
}

func (r *repository) Create(
	ctx context.Context,
	notification *Notification,
) error {
	now := time.Now().UTC()
	notification.CreatedAt = now
	notification.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		notification.ID = oid
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*Notification, error) {
	var notification Notification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notification)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get notification: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}

	return &notification, nil
}

func (r *repository) ListForReceiver(
	ctx context.Context,
	receiver primitive.ObjectID,
	page core.PageQuery,
) ([]Notification, int64, error) {
	filter := bson.M{"receiver": receiver}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor cleanup

	notifications := make([]Notification, 0, page.Limit)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, fmt.Errorf("decode notifications: %w", err)
	}

	return notifications, total, nil
}

func (r *repository) Delete(
	ctx context.Context,
	id primitive.ObjectID,
) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("delete notification: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) CreateSetting(
	ctx context.Context,
	setting *Setting,
) error {
	now := time.Now().UTC()
	setting.CreatedAt = now
	setting.UpdatedAt = now

	result, err := r.settings.InsertOne(ctx, setting)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf(
				"create notification setting: %w",
				core.ErrDuplicateKey,
			)
		}
		return fmt.Errorf("create notification setting: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		setting.ID = oid
	}

	return nil
}

func (r *repository) ListSettings(ctx context.Context) ([]Setting, error) {
	cursor, err := r.settings.Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list notification settings: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor cleanup

	settings := make([]Setting, 0)
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, fmt.Errorf("decode notification settings: %w", err)
	}

	return settings, nil
}

func (r *repository) UpdateSetting(
	ctx context.Context,
	id primitive.ObjectID,
	status bool,
) (*Setting, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var setting Setting
	err := r.settings.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		}},
		opts,
	).Decode(&setting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf(
			"update notification setting: %w",
			core.ErrNotFound,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("update notification setting: %w", err)
	}

	return &setting, nil
}

func (r *repository) DeleteSetting(
	ctx context.Context,
	id primitive.ObjectID,
) error {
	result, err := r.settings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete notification setting: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf(
			"delete notification setting: %w",
			core.ErrNotFound,
		)
	}

	return nil
}
