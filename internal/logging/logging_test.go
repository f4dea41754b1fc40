package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gonormal/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := logging.ParseLevel("loud")
	assert.True(t, errors.Is(err, logging.ErrUnknownLevel))
}

func TestJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New(&buf, logging.Options{Level: "info", Format: "json"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("generated", "rows", 1186)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "generated", record["msg"])
	assert.InDelta(t, 1186.0, record["rows"], 0)
}

func TestTextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New(&buf, logging.Options{Level: "debug"})
	require.NoError(t, err)

	logger.Debug("loaded", "column", "Letters")
	assert.Contains(t, buf.String(), "msg=loaded")
	assert.Contains(t, buf.String(), "column=Letters")
}

func TestLevelOff(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New(&buf, logging.Options{Level: "OFF", Format: "json"})
	require.NoError(t, err)

	logger.Error("dropped", "column", "Letters")
	assert.Empty(t, buf.String())
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := logging.New(&bytes.Buffer{}, logging.Options{Format: "xml"})
	assert.True(t, errors.Is(err, logging.ErrUnknownFormat))
}
