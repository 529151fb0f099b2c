package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/oiscan/pkg/config"
)

// captureConsole redirects the console writer for one test
func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := consoleOut
	consoleOut = &buf
	t.Cleanup(func() { consoleOut = old })
	return &buf
}

func TestConsoleOutIsStderr(t *testing.T) {
	// stdout은 분석 리포트 전용
	assert.Equal(t, os.Stderr, consoleOut)
}

func TestNew_JSON(t *testing.T) {
	buf := captureConsole(t)

	New(&config.Config{Env: "test", LogLevel: "debug", LogFormat: "json"}).
		WithField("symbol", "SBIN").
		Debug("correlation scored")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "correlation scored", entry["message"])
	assert.Equal(t, "SBIN", entry["symbol"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNew_Console(t *testing.T) {
	buf := captureConsole(t)

	New(&config.Config{Env: "test", LogLevel: "info", LogFormat: "console"}).Info("symbol skipped")

	assert.Contains(t, buf.String(), "symbol skipped")
	assert.False(t, json.Valid(buf.Bytes()), "console format should not be JSON")
}

func TestNew_LevelFilter(t *testing.T) {
	buf := captureConsole(t)

	log := New(&config.Config{Env: "test", LogLevel: "WARNING", LogFormat: "json"})
	log.Info("dropped")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
	assert.Equal(t, zerolog.InfoLevel, parseLogLevel("nonsense"))
}

func TestLogFile(t *testing.T) {
	buf := captureConsole(t)

	path := filepath.Join(t.TempDir(), "oiscan.log")
	log := New(&config.Config{Env: "test", LogLevel: "info", LogFormat: "json", LogFile: path})
	log.Info("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, buf.String(), "written to file")
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.WithField("symbol", "TCS").Warn("discarded")
	logger.Errorf("discarded %d", 1)
}
