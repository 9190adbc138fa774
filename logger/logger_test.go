package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chinmay1088/fuelkit/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.LoggingConfig{Level: "debug", Encoding: "json"}, &buf)
	require.NoError(t, err)

	log.Debug("fetching balance", zap.String("network", "testnet"))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "fetching balance", entry["msg"])
	assert.Equal(t, "testnet", entry["network"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "caller")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.LoggingConfig{Level: "warn", Encoding: "console"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.LoggingConfig{Level: "chatty", Encoding: "console"}, &buf)
	require.NoError(t, err)

	log.Debug("debug line")
	log.Info("info line")
	require.NoError(t, log.Sync())

	assert.False(t, strings.Contains(buf.String(), "debug line"))
	assert.True(t, strings.Contains(buf.String(), "info line"))
}
