package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"walltea/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSetupWriter_JSONComponent(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	SetupWriter(&buf, config.LogConfig{Level: "info", Format: "json"})

	Component("reconciler").Info("bucket recomputed", "category_id", 3)
	Component("reconciler").Debug("被过滤")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "reconciler", entry["component"])
	assert.Equal(t, "bucket recomputed", entry["msg"])
	assert.EqualValues(t, 3, entry["category_id"])
}
