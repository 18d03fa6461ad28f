// AngelaMos | 2026
// database.go

package core

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/carterperez-dev/farrior-homes-api/internal/config"
)

type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func NewDatabase(
	ctx context.Context,
	cfg config.MongoConfig,
) (*Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(5 * time.Minute)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx) //nolint:errcheck // cleanup on connection failure
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Database{
		Client: client,
		DB:     client.Database(cfg.Database),
	}, nil
}

func (d *Database) Close(ctx context.Context) error {
	if d.Client == nil {
		return nil
	}

	disconnectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := d.Client.Disconnect(disconnectCtx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}

	return nil
}

func (d *Database) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.Client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}

	return nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.DB.Collection(name)
}
