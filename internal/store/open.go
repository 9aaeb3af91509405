package store

import (
	"context"
	"fmt"
	"time"

	"github.com/techfolio/portfolio-api/internal/config"
	"github.com/techfolio/portfolio-api/internal/database"
)

const (
	connectAttempts = 5
	connectBackoff  = time.Second
)

// Open builds the store selected by cfg.Driver. The returned close function
// releases the underlying connection and is never nil.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, func(context.Context) error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStore(), func(context.Context) error { return nil }, nil
	case config.DriverMongo, "":
		client, err := database.ConnectWithRetry(ctx, cfg.URI, cfg.Timeout, connectAttempts, connectBackoff)
		if err != nil {
			return nil, nil, err
		}
		return NewMongoStore(client.Database(cfg.Database), cfg.OpTimeout), client.Disconnect, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
