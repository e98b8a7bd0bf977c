package sink

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/leeforge/logtree/level"
)

// Writer is a plain-text sink over any io.Writer, intended for debug
// streams and ad hoc capture. Writes are serialized; write errors are
// dropped since logging must never fail the caller.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a writer sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write implements Sink.
func (s *Writer) Write(lvl level.Level, name, msg string, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := time.Now().Format(defaultTimeFormat)
	if name == "" {
		name = "root"
	}
	if cause != nil {
		fmt.Fprintf(s.w, "%s %s %s: %s: %v\n", ts, lvl, name, msg, cause)
		return
	}
	fmt.Fprintf(s.w, "%s %s %s: %s\n", ts, lvl, name, msg)
}

// Sync implements Syncer when the underlying writer can flush.
func (s *Writer) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sy, ok := s.w.(Syncer); ok {
		return sy.Sync()
	}
	return nil
}

var _ Sink = (*Writer)(nil)
