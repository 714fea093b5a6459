package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "info", "json")

	l.Info("checkout completed", "user_id", "abc")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "checkout completed", entry["msg"])
	assert.Equal(t, "abc", entry["user_id"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "warn", "text")

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "loud", "text")

	l.Debug("hidden")
	assert.Empty(t, buf.String())
	l.Info("visible")
	assert.Contains(t, buf.String(), "visible")
}
