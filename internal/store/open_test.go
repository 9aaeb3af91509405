package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/techfolio/portfolio-api/internal/config"
)

func TestOpenMemoryDriver(t *testing.T) {
	s, closeFn, err := Open(context.Background(), config.StorageConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, s)
	require.NoError(t, closeFn(context.Background()))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), config.StorageConfig{Driver: "sqlite"})
	require.Error(t, err)
}

func TestOpenMongoGivesUpOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Open(ctx, config.StorageConfig{Driver: config.DriverMongo, URI: "mongodb://127.0.0.1:1", Database: "app_db", Timeout: 50 * time.Millisecond})
	require.Error(t, err)
}
