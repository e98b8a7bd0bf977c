// Package logger implements the logging façade's core: named logger
// instances with frozen-at-creation levels, chain-of-responsibility fan-out
// to delegate loggers, and the registry ("Context") that creates, caches,
// and reconfigures instances against the hierarchical rule store.
package logger

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/leeforge/logtree/level"
	"github.com/leeforge/logtree/sink"
)

// Logger is a handle for one named logging source. Emission methods apply
// the handle's own level filter, then fan the record out to every chain
// delegate, each of which filters independently.
type Logger interface {
	// Name returns the dotted logger name; empty for the root logger.
	Name() string
	// ID returns the instance identity used for chain membership. Two
	// loggers may share a name but remain distinct chain members.
	ID() string

	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// ErrorCause logs at error level with an associated failure for
	// cause/stack rendering by the sink.
	ErrorCause(msg string, cause error)
	Fatal(msg string, args ...any)

	IsTraceEnabled() bool
	IsDebugEnabled() bool
	IsInfoEnabled() bool
	IsWarnEnabled() bool
	IsErrorEnabled() bool
	IsFatalEnabled() bool

	// Level returns the instance's current minimum level.
	Level() level.Level
	// SetLevel immediately overrides the instance's level, bypassing the
	// configuration store.
	SetLevel(lvl level.Level)

	// AddToChain appends a delegate; silently a no-op when the delegate
	// is already a chain member.
	AddToChain(d Logger)
	// RemoveFromChain removes a delegate by identity and reports whether
	// a removal occurred.
	RemoveFromChain(d Logger) bool
	// ClearChain removes all delegates, leaving only the node itself.
	ClearChain()
	// ChainCount returns 1 + the number of delegates.
	ChainCount() int

	// Sync flushes the node's sink and every delegate.
	Sync() error
}

// node is the concrete logger instance.
type node struct {
	id   string
	name string
	lvl  atomic.Int32
	sink sink.Sink // nil for a synthetic chain head

	mu        sync.RWMutex
	delegates []Logger
}

// New creates a standalone logger instance writing to the given sink,
// bypassing any registry. Chain members are typically built this way.
func New(name string, lvl level.Level, s sink.Sink) Logger {
	n := &node{
		id:   uuid.NewString(),
		name: name,
		sink: s,
	}
	n.lvl.Store(int32(lvl))
	return n
}

// NewHead creates a synthetic chain head: a node with no sink of its own
// that only forwards to its delegates.
func NewHead(name string) Logger {
	return New(name, level.Trace, nil)
}

func (n *node) Name() string { return n.name }
func (n *node) ID() string   { return n.id }

func (n *node) Level() level.Level {
	return level.Level(n.lvl.Load())
}

func (n *node) SetLevel(lvl level.Level) {
	n.lvl.Store(int32(lvl))
}

func (n *node) IsTraceEnabled() bool { return level.Trace.Enabled(n.Level()) }
func (n *node) IsDebugEnabled() bool { return level.Debug.Enabled(n.Level()) }
func (n *node) IsInfoEnabled() bool  { return level.Info.Enabled(n.Level()) }
func (n *node) IsWarnEnabled() bool  { return level.Warn.Enabled(n.Level()) }
func (n *node) IsErrorEnabled() bool { return level.Error.Enabled(n.Level()) }
func (n *node) IsFatalEnabled() bool { return level.Fatal.Enabled(n.Level()) }

func (n *node) Trace(msg string, args ...any) { n.emit(level.Trace, format(msg, args), nil) }
func (n *node) Debug(msg string, args ...any) { n.emit(level.Debug, format(msg, args), nil) }
func (n *node) Info(msg string, args ...any)  { n.emit(level.Info, format(msg, args), nil) }
func (n *node) Warn(msg string, args ...any)  { n.emit(level.Warn, format(msg, args), nil) }
func (n *node) Error(msg string, args ...any) { n.emit(level.Error, format(msg, args), nil) }
func (n *node) Fatal(msg string, args ...any) { n.emit(level.Fatal, format(msg, args), nil) }

func (n *node) ErrorCause(msg string, cause error) {
	n.emit(level.Error, msg, cause)
}

func format(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// emit delivers a record to the node's own sink when enabled, then fans it
// out to every delegate. Each delegate applies its own filter and recurses
// into its own chain; the node's own enablement never gates the fan-out.
func (n *node) emit(lvl level.Level, msg string, cause error) {
	if lvl.Enabled(n.Level()) && n.sink != nil {
		n.write(lvl, msg, cause)
	}
	for _, d := range n.chainSnapshot() {
		forward(d, lvl, msg, cause)
	}
}

// write shields the caller from sink failures. Logging must never crash
// the application, so a panicking backend is swallowed.
func (n *node) write(lvl level.Level, msg string, cause error) {
	defer func() {
		_ = recover()
	}()
	n.sink.Write(lvl, n.name, msg, cause)
}

// forward re-enters the record through the delegate's public surface so
// that delegate implementations of any kind filter and chain on their own.
func forward(d Logger, lvl level.Level, msg string, cause error) {
	switch lvl {
	case level.Trace:
		d.Trace(msg)
	case level.Debug:
		d.Debug(msg)
	case level.Info:
		d.Info(msg)
	case level.Warn:
		d.Warn(msg)
	case level.Error:
		if cause != nil {
			d.ErrorCause(msg, cause)
		} else {
			d.Error(msg)
		}
	case level.Fatal:
		d.Fatal(msg)
	}
}

// chainSnapshot returns a consistent view of the delegate sequence for the
// duration of one dispatch, so concurrent chain mutation cannot race the
// traversal.
func (n *node) chainSnapshot() []Logger {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if len(n.delegates) == 0 {
		return nil
	}
	out := make([]Logger, len(n.delegates))
	copy(out, n.delegates)
	return out
}

func (n *node) AddToChain(d Logger) {
	if d == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, existing := range n.delegates {
		if existing.ID() == d.ID() {
			return
		}
	}
	n.delegates = append(n.delegates, d)
}

func (n *node) RemoveFromChain(d Logger) bool {
	if d == nil {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, existing := range n.delegates {
		if existing.ID() == d.ID() {
			n.delegates = append(n.delegates[:i], n.delegates[i+1:]...)
			return true
		}
	}
	return false
}

func (n *node) ClearChain() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.delegates = nil
}

func (n *node) ChainCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return 1 + len(n.delegates)
}

func (n *node) Sync() error {
	var errs []error
	if sy, ok := n.sink.(sink.Syncer); ok {
		if err := sy.Sync(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, d := range n.chainSnapshot() {
		if err := d.Sync(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ Logger = (*node)(nil)
