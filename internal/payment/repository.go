// AngelaMos | 2026
// repository.go

package payment

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

const collectionName = "payments"

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Payment, error)
	List(ctx context.Context, page core.PageQuery) ([]Payment, int64, error)
	SetCheckoutSession(
		ctx context.Context,
		id primitive.ObjectID,
		sessionID string,
	) error
	MarkCompleted(
		ctx context.Context,
		id primitive.ObjectID,
		paymentIntentID string,
		paidAt time.Time,
	) (bool, error)
	MarkFailed(ctx context.Context, id primitive.ObjectID) (bool, error)
	ListGrantedUserIDs(ctx context.Context) ([]primitive.ObjectID, error)
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
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user", Value: 1}},
		},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("ensure payment indexes: %w", err)
	}

	return nil
}

func (r *repository) Create(ctx context.Context, payment *Payment) error {
	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create payment: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create payment: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*Payment, error) {
	var payment Payment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get payment: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &payment, nil
}

func (r *repository) List(
	ctx context.Context,
	page core.PageQuery,
) ([]Payment, int64, error) {
	filter := bson.M{}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count payments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // cursor cleanup

	payments := make([]Payment, 0, page.Limit)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, 0, fmt.Errorf("decode payments: %w", err)
	}

	return payments, total, nil
}

func (r *repository) SetCheckoutSession(
	ctx context.Context,
	id primitive.ObjectID,
	sessionID string,
) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"stripeCheckoutSessionId": sessionID,
			"updatedAt":               time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("set checkout session: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("set checkout session: %w", core.ErrNotFound)
	}

	return nil
}

// MarkCompleted performs the PENDING to COMPLETED transition. The status in
// the filter is the idempotency mechanism: a redelivered event matches zero
// documents and reports applied=false without modifying anything.
func (r *repository) MarkCompleted(
	ctx context.Context,
	id primitive.ObjectID,
	paymentIntentID string,
	paidAt time.Time,
) (bool, error) {
	fields := bson.M{
		"status":                StatusCompleted,
		"lifetimeAccessGranted": true,
		"paidAt":                paidAt,
		"updatedAt":             time.Now().UTC(),
	}
	if paymentIntentID != "" {
		fields["transactionId"] = paymentIntentID
		fields["stripePaymentIntentId"] = paymentIntentID
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": StatusPending},
		bson.M{"$set": fields},
	)
	if err != nil {
		return false, fmt.Errorf("mark payment completed: %w", err)
	}

	return result.ModifiedCount > 0, nil
}

func (r *repository) MarkFailed(
	ctx context.Context,
	id primitive.ObjectID,
) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": StatusPending},
		bson.M{"$set": bson.M{
			"status":    StatusFailed,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return false, fmt.Errorf("mark payment failed: %w", err)
	}

	return result.ModifiedCount > 0, nil
}

// ListGrantedUserIDs feeds the reconciliation sweep with the owners of every
// completed, access-granted payment.
func (r *repository) ListGrantedUserIDs(
	ctx context.Context,
) ([]primitive.ObjectID, error) {
	values, err := r.collection.Distinct(ctx, "user", bson.M{
		"status":                StatusCompleted,
		"lifetimeAccessGranted": true,
	})
	if err != nil {
		return nil, fmt.Errorf("list granted user ids: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if oid, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, oid)
		}
	}

	return ids, nil
}
