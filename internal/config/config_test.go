package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is missing", func(t *testing.T) {
		// When: loading from a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.False(t, conf.NoClear)
		assert.False(t, conf.NoColor)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads values from yaml", func(t *testing.T) {
		// Given: a config file
		path := writeConfig(t, `
log-level: debug
storage: redis
no-clear: true
redis:
  host: cache
  port: "7000"
`)

		// When: loading it
		conf, err := Load(path)

		// Then: file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.True(t, conf.NoClear)
		assert.Equal(t, "cache:7000", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: an environment variable
		t.Setenv("TENTEN_LOG_LEVEL", "info")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment value wins
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
	})

	t.Run("Rejects unknown storage", func(t *testing.T) {
		path := writeConfig(t, "storage: postgres\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownStorage)
	})

	t.Run("MustLoad panics on bad config", func(t *testing.T) {
		path := writeConfig(t, "storage: postgres\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
