package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		// Given: a redis server
		server, err := miniredis.Run()
		require.NoError(t, err)
		defer server.Close()

		// When: connecting to it
		client, err := NewRedisStorage(context.Background(), server.Addr())

		// Then: the client is usable
		require.NoError(t, err)
		defer client.Close()
		require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		// Given: a server that has been stopped
		server, err := miniredis.Run()
		require.NoError(t, err)
		addr := server.Addr()
		server.Close()

		// When: connecting to its address
		client, err := NewRedisStorage(context.Background(), addr)

		// Then: an error is returned
		require.Error(t, err)
		require.Nil(t, client)
	})
}
