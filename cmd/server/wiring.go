package main

import (
	"context"
	"fmt"

	"foodapp/internal/config"
	"foodapp/internal/infrastructure/kafka"
	"foodapp/internal/infrastructure/mongo"
	"foodapp/internal/infrastructure/mysql"
	"foodapp/internal/infrastructure/postgres"
	"foodapp/internal/store"

	"go.uber.org/zap"
)

type eventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
	Close() error
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := mongo.NewClient(ctx, cfg.Store)
		if err != nil {
			return nil, err
		}
		return store.NewMongoStore(client, cfg.Store.Name), nil

	case config.DriverMySQL:
		db, err := mysql.NewConnection(ctx, cfg.MySQL)
		if err != nil {
			return nil, err
		}
		s := store.NewMySQLStore(db, cfg.MySQL.Name)
		if err := s.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrating mysql store: %w", err)
		}
		return s, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Store)
		if err != nil {
			return nil, err
		}
		s := store.NewPostgresStore(pool)
		if err := s.Migrate(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrating postgres store: %w", err)
		}
		return s, nil

	case config.DriverMemory:
		return store.NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}

// newPublisher returns a kafka producer, or a no-op publisher when no
// brokers are configured.
func newPublisher(cfg config.KafkaConfig, logger *zap.Logger) (eventPublisher, error) {
	if !cfg.Enabled() {
		logger.Info("kafka disabled, order events will not be published")
		return kafka.NopPublisher{}, nil
	}

	p, err := kafka.NewProducer(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("kafka producer ready", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.Topic))
	return p, nil
}
