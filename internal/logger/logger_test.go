package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.With().Str("view", "page").Logger()
	log.Info().Msg("page loaded")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "page loaded", entry["message"])
	require.Equal(t, "page", entry["view"])
	require.Equal(t, "info", entry["level"])
	require.Contains(t, entry, "time")
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "INFO", Writer: buf})
	require.NoError(t, err)

	log.Debug().Msg("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn().Str("view", "menu").Msg("no such view")
	out := buf.String()
	require.Contains(t, out, "no such view")
	require.Contains(t, out, "view=")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}
