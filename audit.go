package goCell

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// ViolationEvent records one runtime-detected misuse of the protocol. Events
// are emitted only for violations; well-typed usage never produces one.
type ViolationEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	Brand     string    `json:"brand"`
	Op        string    `json:"op"`
	Detail    string    `json:"detail,omitempty"`
}

// AuditSink receives violation events from the scope's dispatcher. Emit must
// be safe for concurrent use and should return promptly; slow sinks cause
// events to be dropped or the dispatcher to back up, never the hot path to
// stall.
type AuditSink interface {
	Emit(ctx context.Context, event ViolationEvent)
}

// NoOpSink defines a public type used by goCell APIs.
//
// NoOpSink instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type NoOpSink struct{}

// Emit discards the event.
func (NoOpSink) Emit(context.Context, ViolationEvent) {}

// ChannelSink delivers events on a buffered channel for test and tooling
// consumers.
type ChannelSink struct {
	events chan ViolationEvent
}

// NewChannelSink returns a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan ViolationEvent, buffer),
	}
}

// Emit delivers the event, giving up if ctx is done first.
func (s *ChannelSink) Emit(ctx context.Context, event ViolationEvent) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

// Events returns the receive side of the sink.
func (s *ChannelSink) Events() <-chan ViolationEvent {
	return s.events
}

// JSONWriterSink writes one JSON object per event, newline-terminated.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterSink returns a [JSONWriterSink] writing to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

// Emit marshals and writes the event. Marshal or write failures are
// silently dropped; audit output must never feed back into access paths.
func (s *JSONWriterSink) Emit(ctx context.Context, event ViolationEvent) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
