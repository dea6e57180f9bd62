package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, line []byte) map[string]string {
	t.Helper()
	var entry map[string]string
	require.NoError(t, json.Unmarshal(line, &entry))
	return entry
}

func TestJSONLogger_Write(t *testing.T) {
	var buf bytes.Buffer
	l := &JSONLogger{
		Instance: "valentine-test",
		Out:      &buf,
		now:      func() time.Time { return time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC) },
	}

	logger := log.New(l, "", 0)
	logger.Printf("Serving on port %s...", "8080")

	entry := decode(t, bytes.TrimSpace(buf.Bytes()))
	assert.Equal(t, map[string]string{
		"timestamp": "2026-02-14T09:30:00Z",
		"level":     "info",
		"instance":  "valentine-test",
		"message":   "Serving on port 8080...",
	}, entry)
}

func TestJSONLogger_Levels(t *testing.T) {
	tests := []struct {
		line, level, message string
	}{
		{"WARN: SESSION_SECRET not set\n", "warn", "SESSION_SECRET not set"},
		{"ERROR: save session: boom\n", "error", "save session: boom"},
		{"plain\n", "info", "plain"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		l := &JSONLogger{Out: &buf}
		n, err := l.Write([]byte(tt.line))
		require.NoError(t, err)
		assert.Equal(t, len(tt.line), n)

		entry := decode(t, bytes.TrimSpace(buf.Bytes()))
		assert.Equal(t, tt.level, entry["level"])
		assert.Equal(t, tt.message, entry["message"])
	}
}
