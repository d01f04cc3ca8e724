package diag

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the path to the creature log file, relative to the working directory
// (project root when run via go run ./cmd/viewer).
const LogFilePath = "logs/creatures.txt"

// Level classifies an event.
type Level int

const (
	Info Level = iota
	Warn
	Error
)

// String returns the level tag used in the log file.
func (l Level) String() string {
	switch l {
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Event is one diagnostic emitted by the loader. Code is a short stable identifier
// for the step that produced the event (e.g. "model_loaded", "fallback_used") so
// tests can assert on specific steps without parsing messages.
type Event struct {
	Level   Level
	Code    string
	Message string
}

// Sink receives loader events. Implementations must not fail; a nil Sink is valid
// everywhere and means "discard".
type Sink interface {
	Emit(e Event)
}

// Log stores events in memory and appends them to a file on disk. It is the default
// sink for the viewer; tests usually use a bare in-memory Log with no file.
type Log struct {
	mu     sync.Mutex
	events []Event
	path   string
}

// NewLog returns a Log that appends to path, creating the parent directory.
// An empty path keeps events in memory only.
func NewLog(path string) *Log {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Log{path: path}
}

// Emit records the event and, when a file path is configured, appends one line to it.
// Each line is prefixed with [timestamp] LEVEL code: message.
func (l *Log) Emit(e Event) {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(f, "[%s] %s %s: %s\n", ts, e.Level, e.Code, e.Message)
	_ = f.Close()
}

// Events returns a copy of all recorded events.
func (l *Log) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Codes returns the codes of all recorded events, in order. Convenience for tests.
func (l *Log) Codes() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.events))
	for i, e := range l.events {
		out[i] = e.Code
	}
	return out
}
