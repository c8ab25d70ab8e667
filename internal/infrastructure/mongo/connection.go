package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"foodapp/internal/config"
)

// NewClient connects to the deployment named by DATABASE_URL and verifies
// the primary is reachable.
func NewClient(ctx context.Context, cfg config.StoreConfig) (*mongo.Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("DATABASE_URL is required for the mongo driver")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL).SetAppName("foodapp"))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return client, nil
}
