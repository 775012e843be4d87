package repository

import (
	"context"
	"fmt"
	"time"

	"org-tenancy-backend/internal/config"
	"org-tenancy-backend/internal/database"
	apperrors "org-tenancy-backend/internal/errors"
)

// CloseFunc releases the store connection opened by Open
type CloseFunc func(ctx context.Context) error

// Open connects to the store selected by STORE_DRIVER and wires its repositories.
// The returned CloseFunc must be called once the server has stopped.
func Open(ctx context.Context, cfg *config.Config) (*Set, CloseFunc, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		timeout := time.Duration(cfg.MongoConnectTimeoutSec) * time.Second
		gw, err := database.ConnectMongo(ctx, cfg.MongoURL, cfg.MasterDBName, &database.MongoOptions{ConnectTimeout: timeout})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		return NewMongoSet(gw), gw.Close, nil

	case config.StoreDriverPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		return NewSQLSet(db), func(context.Context) error { return database.Close(db) }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedStoreDriver, cfg.StoreDriver)
	}
}
