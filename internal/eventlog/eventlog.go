// Package eventlog appends structured JSONL events to a log file next
// to the database. The log is best-effort diagnostics: persistence
// retries, degraded-mode warnings and registry changes end up here so
// a silent TUI still leaves a trail.
package eventlog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventSessionCompleted = "session_completed"
	EventWriteRetry       = "write_retry"
	EventWriteFailed      = "write_failed"
	EventTagAdded         = "tag_added"
	EventTagRemoved       = "tag_removed"
)

// Event is a single structured log entry.
type Event struct {
	Time     time.Time `json:"time"`
	Event    string    `json:"event"`
	Tag      string    `json:"tag,omitempty"`
	Duration int64     `json:"duration_seconds,omitempty"`
	Attempt  int       `json:"attempt,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// Logger writes append-only JSONL events. A nil Logger discards.
type Logger struct {
	path string
	mu   sync.Mutex
}

// New creates a Logger writing to path, creating parent directories as
// needed. An existing log file is never truncated.
func New(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return &Logger{path: path}, nil
}

// Append writes one event as a JSON line. A zero Time is filled with
// the current time. Safe for concurrent use.
func (l *Logger) Append(event Event) error {
	if l == nil {
		return nil
	}
	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

// ReadAll parses every event in the log. A missing file yields an
// empty slice, not an error.
func (l *Logger) ReadAll() ([]Event, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Event{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(b, &ev); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return events, nil
}
