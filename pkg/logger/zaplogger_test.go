package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_InfoCarriesFieldsAndCaller(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{AppName: "plant-care-api", AppEnv: "test", Level: "info", Writers: []io.Writer{&buf}})

	l.Info("suggestion computed", map[string]any{"city": "Utrecht", "water_level": 2})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "suggestion computed", lines[0]["msg"])
	assert.Equal(t, "Utrecht", lines[0]["city"])
	assert.Equal(t, float64(2), lines[0]["water_level"])
	assert.Equal(t, "plant-care-api", lines[0]["app_name"])
	assert.Equal(t, "test", lines[0]["app_zone"])
	assert.Contains(t, lines[0]["caller_func"], "TestLogger_InfoCarriesFieldsAndCaller")
}

func TestLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{AppName: "app", Level: "info", Writers: []io.Writer{&buf}})

	l.Debug("hidden")
	l.Warning("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])
	assert.Equal(t, "warn", lines[0]["level"])
}

func TestLogger_ErrorIncludesErrorField(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("app", &buf)

	l.Error(errors.New("forecast fetch failed"), map[string]any{"provider": "open-meteo"})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "forecast fetch failed", lines[0]["error"])
	assert.Equal(t, "open-meteo", lines[0]["provider"])
	assert.NotEmpty(t, lines[0]["stack"])
}

func TestLogger_LogKeyvals(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("app", &buf)

	require.NoError(t, l.Log("job", "reminder", 42, "ignored-key", "dangling"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "reminder", lines[0]["job"])
	assert.Equal(t, "ignored-key", lines[0]["invalid-key"])
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing")
	l.Error(errors.New("nothing"))
	assert.NoError(t, l.Stop())
}
