package event

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink consumes core events
// Emit must not block the tick and must swallow its own failures
type Sink interface {
	Emit(Event)
}

// Discard drops every event
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// LogSink writes events to a zap logger
// force_applied is logged at debug level, everything else at info
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink on logger, nil means no-op
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger.Named("events")}
}

func (s *LogSink) Emit(ev Event) {
	level := zapcore.InfoLevel
	if ev.Kind == KindForceApplied {
		level = zapcore.DebugLevel
	}
	ce := s.logger.Check(level, ev.Kind.String())
	if ce == nil {
		return
	}

	fields := []zap.Field{zap.Uint64("tick", ev.Tick)}
	if m, ok := ev.Payload.(zapcore.ObjectMarshaler); ok {
		fields = append(fields, zap.Object("payload", m))
	} else if ev.Payload != nil {
		fields = append(fields, zap.Any("payload", ev.Payload))
	}
	ce.Write(fields...)
}

// Fanout forwards every event to each sink in order
// A panicking sink is isolated so the remaining sinks and the tick still run
type Fanout []Sink

func (f Fanout) Emit(ev Event) {
	for _, s := range f {
		EmitSafe(s, ev)
	}
}

// EmitSafe delivers ev to s and swallows a panic from s
func EmitSafe(s Sink, ev Event) {
	defer func() { _ = recover() }()
	s.Emit(ev)
}

// Recorder keeps the most recent events in a bounded ring
type Recorder struct {
	mu     sync.Mutex
	events []Event
	next   int
	full   bool
}

// NewRecorder creates a recorder holding up to capacity events
func NewRecorder(capacity int) *Recorder {
	if capacity < 1 {
		capacity = 1
	}
	return &Recorder{events: make([]Event, capacity)}
}

func (r *Recorder) Emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[r.next] = ev
	r.next = (r.next + 1) % len(r.events)
	if r.next == 0 {
		r.full = true
	}
}

// Events returns recorded events oldest first
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		return append([]Event(nil), r.events[:r.next]...)
	}
	out := make([]Event, 0, len(r.events))
	out = append(out, r.events[r.next:]...)
	return append(out, r.events[:r.next]...)
}

// Last returns the newest event, ok is false when empty
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full && r.next == 0 {
		return Event{}, false
	}
	idx := (r.next - 1 + len(r.events)) % len(r.events)
	return r.events[idx], true
}
