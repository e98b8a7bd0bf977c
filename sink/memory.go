package sink

import (
	"sync"

	"github.com/leeforge/logtree/level"
)

// Entry is one captured record.
type Entry struct {
	Level   level.Level
	Name    string
	Message string
	Cause   error
}

// Memory captures records in order, for tests and introspection.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemory creates an empty capturing sink.
func NewMemory() *Memory {
	return &Memory{}
}

// Write implements Sink.
func (m *Memory) Write(lvl level.Level, name, msg string, cause error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Level: lvl, Name: name, Message: msg, Cause: cause})
}

// Entries returns a snapshot of the captured records.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of captured records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Reset drops all captured records.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}

var _ Sink = (*Memory)(nil)
