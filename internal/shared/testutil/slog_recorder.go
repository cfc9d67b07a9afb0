package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// LogRecord is one captured log entry.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogRecorder is a slog.Handler that captures records so tests can
// assert on what the parser logged.
type LogRecorder struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewLogRecorder creates an empty recorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

// Logger returns a slog.Logger writing into the recorder.
func (h *LogRecorder) Logger() *slog.Logger {
	return slog.New(h)
}

// Handle implements slog.Handler.
func (h *LogRecorder) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, LogRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

// Enabled implements slog.Handler; all levels are captured.
func (h *LogRecorder) Enabled(context.Context, slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. Grouping is not needed in tests,
// so the recorder itself is returned.
func (h *LogRecorder) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler.
func (h *LogRecorder) WithGroup(string) slog.Handler {
	return h
}

// Records returns a copy of everything captured so far.
func (h *LogRecorder) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]LogRecord, len(h.records))
	copy(out, h.records)
	return out
}

// HasMessage reports whether any captured record carries msg.
func (h *LogRecorder) HasMessage(msg string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if r.Message == msg {
			return true
		}
	}
	return false
}
