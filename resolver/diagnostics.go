package resolver

import (
	"sync"

	"github.com/rs/zerolog"
)

// DiagnosticSink receives fire-and-forget diagnostic events emitted during
// resolution. Implementations must not block and must not fail resolution.
type DiagnosticSink interface {
	Emit(event string, fields map[string]any)
}

// LogSink writes diagnostic events as structured log entries.
type LogSink struct {
	logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(event string, fields map[string]any) {
	s.logger.Info().Fields(fields).Msg(event)
}

// DiagnosticEvent is a single recorded event.
type DiagnosticEvent struct {
	Event  string
	Fields map[string]any
}

// RecordSink collects diagnostic events for assertions in tests.
// Thread-safe for use in concurrent tests.
type RecordSink struct {
	mu     sync.Mutex
	events []DiagnosticEvent
}

func (s *RecordSink) Emit(event string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, DiagnosticEvent{Event: event, Fields: fields})
}

// Events returns a copy of the recorded events.
func (s *RecordSink) Events() []DiagnosticEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DiagnosticEvent(nil), s.events...)
}
