// Package testutils holds small helpers shared by tests.
package testutils

// TestingT is a minimal interface that matches the methods we need from testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// LogEntry is one captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
}

// RecordingLogger captures log calls for assertions. It implements the
// logging.Logger interface.
type RecordingLogger struct {
	Entries []LogEntry
}

func (r *RecordingLogger) record(level, msg string, fields []any) {
	r.Entries = append(r.Entries, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (r *RecordingLogger) Debug(msg string, fields ...any) { r.record("DEBUG", msg, fields) }
func (r *RecordingLogger) Info(msg string, fields ...any)  { r.record("INFO", msg, fields) }
func (r *RecordingLogger) Warn(msg string, fields ...any)  { r.record("WARN", msg, fields) }
func (r *RecordingLogger) Error(msg string, fields ...any) { r.record("ERROR", msg, fields) }

// Last returns the most recent entry, or nil when nothing was logged.
func (r *RecordingLogger) Last() *LogEntry {
	if len(r.Entries) == 0 {
		return nil
	}
	return &r.Entries[len(r.Entries)-1]
}

// FieldsToMap safely converts a slice of alternating key-value pairs to a map.
// It performs safe type assertions and handles malformed entries gracefully.
func FieldsToMap(t TestingT, fields []any) map[string]any {
	fieldsMap := make(map[string]any)

	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			t.Errorf("Malformed fields slice: missing value for key at index %d", i)
			continue
		}

		key, ok := fields[i].(string)
		if !ok {
			t.Errorf("Malformed fields slice: key at index %d is not a string, got %T", i, fields[i])
			continue
		}

		fieldsMap[key] = fields[i+1]
	}

	return fieldsMap
}
