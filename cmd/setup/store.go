package setup

import (
	"context"
	"fmt"

	"github.com/IsaacDSC/trendforge/internal/cfg"
	"github.com/IsaacDSC/trendforge/internal/profilestore"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CloseFn func(ctx context.Context) error

// NewRepository opens the profile store selected by DB_DRIVER and prepares its schema.
func NewRepository(ctx context.Context, conf cfg.ConfigDatabase) (profilestore.Repository, CloseFn, error) {
	switch conf.Driver {
	case "", "memory":
		return profilestore.NewMemStore(), func(context.Context) error { return nil }, nil

	case "mongo":
		client, err := mongo.Connect(options.Client().ApplyURI(conf.DbConn))
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}

		store := profilestore.NewMongoStore(client, conf.DbName)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, fmt.Errorf("ensure mongo indexes: %w", err)
		}

		return store, client.Disconnect, nil

	case "pg", "postgres":
		store, err := profilestore.NewPostgresStoreFromDSN(ctx, conf.DbConn)
		if err != nil {
			return nil, nil, err
		}

		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}

		return store, func(context.Context) error { store.Close(); return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", conf.Driver)
	}
}
