package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tenten/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	t.Run("Runs a game from stdin", func(t *testing.T) {
		// Given: a command wired to buffers and a missing config file
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetIn(strings.NewReader("\n12\nquit\n"))
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "--no-color"})

		// When: it is executed
		err := cmd.Execute()

		// Then: the game starts and ends on quit
		require.NoError(t, err)
		assert.Contains(t, out.String(), "=== 10x10 (5-IN-A-ROW) ===")
		assert.Contains(t, out.String(), "Game interrupted. Thanks for playing!")
	})

	t.Run("Rejects positional arguments", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"extra"})

		require.Error(t, cmd.Execute())
	})
}

func TestInitLogger(t *testing.T) {
	// Given: a config that logs to a file at info level
	path := filepath.Join(t.TempDir(), "tenten.log")
	conf := &config.Config{LogLevel: "info", LogFile: path}

	// When: a message is logged
	logger, closeLog, err := initLogger(conf)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("visible", "component", "test")
	closeLog()

	// Then: only the info record is written, as JSON
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"visible"`)
	assert.NotContains(t, string(data), "hidden")
}
