package logging

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// StdoutLogger writes one JSON object per line. Service tags every entry so
// the server and the CLI can share an output stream.
type StdoutLogger struct {
	Service string
}

func (l *StdoutLogger) log(level, msg string, fields map[string]any) {
	entry := map[string]any{
		"level": level,
		"msg":   msg,
		"time":  time.Now().UTC().Format(time.RFC3339),
	}
	if l.Service != "" {
		entry["service"] = l.Service
	}

	maps.Copy(entry, fields)

	b, _ := json.Marshal(entry)
	fmt.Println(string(b))
}

func (l *StdoutLogger) Info(msg string, fields map[string]any) {
	l.log("INFO", msg, fields)
}

func (l *StdoutLogger) Error(msg string, fields map[string]any) {
	l.log("ERROR", msg, fields)
}

// NopLogger discards everything; tests use it.
type NopLogger struct{}

func (NopLogger) Info(string, map[string]any)  {}
func (NopLogger) Error(string, map[string]any) {}
