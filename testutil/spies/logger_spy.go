package spies

import (
	"context"
	"sync"
)

// LogRecord is one captured log call. Attrs holds the key/value args.
type LogRecord struct {
	Level   string
	Message string
	Attrs   map[string]any
	HasCtx  bool
}

// LoggerSpy implements both eventstore.Logger and eventstore.ContextualLogger.
type LoggerSpy struct {
	mu      sync.Mutex
	records []LogRecord
}

func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

func (s *LoggerSpy) Debug(msg string, args ...any) { s.record("debug", msg, false, args) }
func (s *LoggerSpy) Info(msg string, args ...any)  { s.record("info", msg, false, args) }
func (s *LoggerSpy) Warn(msg string, args ...any)  { s.record("warn", msg, false, args) }
func (s *LoggerSpy) Error(msg string, args ...any) { s.record("error", msg, false, args) }

func (s *LoggerSpy) DebugContext(_ context.Context, msg string, args ...any) {
	s.record("debug", msg, true, args)
}

func (s *LoggerSpy) InfoContext(_ context.Context, msg string, args ...any) {
	s.record("info", msg, true, args)
}

func (s *LoggerSpy) WarnContext(_ context.Context, msg string, args ...any) {
	s.record("warn", msg, true, args)
}

func (s *LoggerSpy) ErrorContext(_ context.Context, msg string, args ...any) {
	s.record("error", msg, true, args)
}

func (s *LoggerSpy) Records() []LogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]LogRecord(nil), s.records...)
}

// Find returns the first record with the given level and message.
func (s *LoggerSpy) Find(level, message string) (LogRecord, bool) {
	for _, record := range s.Records() {
		if record.Level == level && record.Message == message {
			return record, true
		}
	}

	return LogRecord{}, false
}

func (s *LoggerSpy) record(level, msg string, hasCtx bool, args []any) {
	attrs := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			attrs[key] = args[i+1]
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, LogRecord{Level: level, Message: msg, Attrs: attrs, HasCtx: hasCtx})
}
