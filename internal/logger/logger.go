package logger

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"
)

// JSONLogger turns each line written by the standard log package into a JSON
// record. A message prefixed with "WARN: " or "ERROR: " is logged at that
// level; everything else is info.
type JSONLogger struct {
	Instance string
	Out      io.Writer

	now func() time.Time
}

var levelPrefixes = []struct {
	prefix string
	level  string
}{
	{"ERROR: ", "error"},
	{"WARN: ", "warn"},
}

func (l *JSONLogger) Write(p []byte) (n int, err error) {
	message := strings.TrimRight(string(p), "\n")
	level := "info"
	for _, lp := range levelPrefixes {
		if rest, ok := strings.CutPrefix(message, lp.prefix); ok {
			level, message = lp.level, rest
			break
		}
	}

	now := time.Now
	if l.now != nil {
		now = l.now
	}
	logEntry := map[string]interface{}{
		"timestamp": now().UTC().Format(time.RFC3339),
		"level":     level,
		"instance":  l.Instance,
		"message":   message,
	}

	jsonBytes, err := json.Marshal(logEntry)
	if err != nil {
		return 0, err
	}

	out := l.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := out.Write(append(jsonBytes, '\n')); err != nil {
		return 0, err
	}
	return len(p), nil
}
