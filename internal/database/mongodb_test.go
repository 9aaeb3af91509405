package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnectWithRetryGivesUpOnInvalidURI(t *testing.T) {
	start := time.Now()
	client, err := ConnectWithRetry(context.Background(), "not-a-mongo-uri", time.Second, 2, time.Millisecond)
	require.Error(t, err)
	require.Nil(t, client)
	require.Contains(t, err.Error(), "after 2 attempts")
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestConnectWithRetryHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ConnectWithRetry(ctx, "not-a-mongo-uri", time.Second, 3, time.Second)
	require.Error(t, err)
}
