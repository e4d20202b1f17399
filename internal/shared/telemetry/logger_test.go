package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Info("analysis.completed", map[string]any{"analysis_id": "a-1", "match": 88})

	var payload map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload))
	assert.Equal(t, "info", payload["level"])
	assert.Equal(t, "analysis.completed", payload["msg"])
	assert.Equal(t, "a-1", payload["analysis_id"])
	assert.EqualValues(t, 88, payload["match"])
	assert.Contains(t, payload, "ts")
}

func TestErrorAndNilFields(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Error("boom", nil)
	Warn("careful", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"error"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
}

func TestNewLoggerLevelFallback(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, Config{Level: "nonsense"})

	l.Debug().Msg("hidden")
	l.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
