package testutils

import (
	"sync"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// MockLogger implements domain.Logger for testing purposes.
// Use blank identifier for unused parameters to satisfy revive linter.
type MockLogger struct{}

// NewMockLogger creates a logger that discards everything.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Debug implements domain.Logger interface.
func (m *MockLogger) Debug(_ string, _ ...domain.Field) {}

// Info implements domain.Logger interface.
func (m *MockLogger) Info(_ string, _ ...domain.Field) {}

// Warn implements domain.Logger interface.
func (m *MockLogger) Warn(_ string, _ ...domain.Field) {}

// Error implements domain.Logger interface.
func (m *MockLogger) Error(_ string, _ ...domain.Field) {}

// With implements domain.Logger interface.
func (m *MockLogger) With(_ ...domain.Field) domain.Logger { return m }

// LogEntry is a message captured by RecordingLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]any
}

// RecordingLogger captures log entries for assertions.
type RecordingLogger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	fields  []domain.Field
}

// NewRecordingLogger creates an empty recording logger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{
		mu:      &sync.Mutex{},
		entries: &[]LogEntry{},
	}
}

// Debug implements domain.Logger interface.
func (r *RecordingLogger) Debug(msg string, fields ...domain.Field) { r.record("debug", msg, fields) }

// Info implements domain.Logger interface.
func (r *RecordingLogger) Info(msg string, fields ...domain.Field) { r.record("info", msg, fields) }

// Warn implements domain.Logger interface.
func (r *RecordingLogger) Warn(msg string, fields ...domain.Field) { r.record("warn", msg, fields) }

// Error implements domain.Logger interface.
func (r *RecordingLogger) Error(msg string, fields ...domain.Field) { r.record("error", msg, fields) }

// With returns a logger sharing the same entry log.
func (r *RecordingLogger) With(fields ...domain.Field) domain.Logger {
	combined := make([]domain.Field, 0, len(r.fields)+len(fields))
	combined = append(combined, r.fields...)
	combined = append(combined, fields...)

	return &RecordingLogger{mu: r.mu, entries: r.entries, fields: combined}
}

// Entries returns a copy of the captured entries.
func (r *RecordingLogger) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]LogEntry(nil), *r.entries...)
}

// EntriesAt returns captured entries of the given level.
func (r *RecordingLogger) EntriesAt(level string) []LogEntry {
	var out []LogEntry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}

	return out
}

func (r *RecordingLogger) record(level, msg string, fields []domain.Field) {
	entry := LogEntry{
		Level:   level,
		Message: msg,
		Fields:  make(map[string]any, len(r.fields)+len(fields)),
	}
	for _, f := range r.fields {
		entry.Fields[f.Key] = f.Value
	}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	r.mu.Lock()
	*r.entries = append(*r.entries, entry)
	r.mu.Unlock()
}
