// Package logview implements the log pipeline between background process
// output and the UI: a many-writer queue drained on the UI thread, and a
// bounded display buffer that evicts its oldest lines.
package logview

import (
	"strings"
	"sync"
)

// MaxLines caps the display buffer so very long runs cannot grow the UI
// without bound.
const MaxLines = 2000

// Sink is a thread-safe message queue. Any goroutine may Publish; a single
// consumer on the UI thread drains it on a fixed cadence.
type Sink struct {
	mu      sync.Mutex
	pending []string
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Publish enqueues a message. Safe to call from any goroutine; never blocks
// on the consumer.
func (s *Sink) Publish(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, message)
}

// Drain returns all currently queued messages and empties the queue.
func (s *Sink) Drain() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	drained := s.pending
	s.pending = nil
	return drained
}

// Buffer is the display-side line store. It is not synchronized: all access
// must happen on the UI thread, mirroring how the rest of the UI state is
// owned by a single thread.
type Buffer struct {
	lines []string
}

// NewBuffer creates an empty display buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds a message to the buffer, splitting it into lines, and evicts
// the oldest lines once MaxLines is exceeded.
func (b *Buffer) Append(message string) {
	b.lines = append(b.lines, strings.Split(message, "\n")...)

	if overflow := len(b.lines) - MaxLines; overflow > 0 {
		b.lines = b.lines[overflow:]
	}
}

// Len returns the current number of buffered lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.lines = nil
}

// String renders the buffer for display.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}
