package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "control"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"space": "hex", "stops": 3})
	log.Info("gradient loaded", "path", "sunset.yaml")

	entry := decode(t, buf)
	require.Equal(t, "gradient loaded", entry["message"])
	require.Equal(t, "hex", entry["space"])
	require.Equal(t, float64(3), entry["stops"])
	require.Equal(t, "sunset.yaml", entry["path"])
	require.Equal(t, "control", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear", "index", 1)
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.False(t, log.Enabled("debug"))
	require.True(t, log.Enabled("warn"))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("path", "g.json").Error(errors.New("boom"), "save failed", "attempt", 2)

	entry := decode(t, buf)
	require.Equal(t, "save failed", entry["message"])
	require.Equal(t, "g.json", entry["path"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, float64(2), entry["attempt"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilAndNopLoggersDiscard(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("x")
		log.Debug("x", "k", "v")
		log.Warn("x")
		log.Error(errors.New("e"), "x")
		require.Nil(t, log.With("k", "v"))
	})

	require.NotPanics(t, func() {
		Nop().Debug("x", "k", "v")
		Nop().Error(nil, "x")
	})
}
