package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// New connects to the document store and returns a handle to the
// configured database. The client is pooled and shared across requests;
// Timeout bounds every operation issued through it.
func New(ctx context.Context, cfg Config) (*mongo.Database, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to create mongo client: %v", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %v", err)
	}

	return client.Database(cfg.Database), nil
}
