package display

import (
	"context"
	"sync"
)

// MemorySink records every frame it is shown. It is mainly useful in tests
// and scenario scripts that want to assert on the full display sequence.
type MemorySink struct {
	mu     sync.Mutex
	frames []string
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Show implements Sink by appending the frame to the recorded sequence.
// It never returns an error.
func (m *MemorySink) Show(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = append(m.frames, text)
	return nil
}

// Last returns the most recently shown frame, or "" when nothing has been
// shown yet.
func (m *MemorySink) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.frames) == 0 {
		return ""
	}
	return m.frames[len(m.frames)-1]
}

// Frames returns a copy of every frame shown so far, in order.
func (m *MemorySink) Frames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.frames))
	copy(out, m.frames)
	return out
}

// Reset discards the recorded frames.
func (m *MemorySink) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = nil
}
