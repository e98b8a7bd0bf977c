package logger

import (
	"errors"
	"sort"
	"sync"

	"github.com/leeforge/logtree/config"
	"github.com/leeforge/logtree/level"
	"github.com/leeforge/logtree/sink"
)

// Builder constructs a freshly-configured backend-backed logger for a
// name at the level the configuration store resolved for it.
type Builder func(name string, lvl level.Level) Logger

// Context is the logger registry: it owns the name-to-instance cache, the
// configuration store, and the builder used to manufacture new instances.
// A process-default Context backs the package-level façade; tests construct
// isolated ones. All methods are safe for concurrent use.
//
// A logger's level is frozen when the instance is built; later rule changes
// only take effect after Reset and re-acquisition. That keeps the hot-path
// enablement check a plain atomic read.
type Context struct {
	mu      sync.RWMutex
	cache   map[string]Logger
	store   *config.Store
	builder Builder
	root    Logger // explicitly injected root instance, overrides the builder for ""
}

// Option configures a Context.
type Option func(*Context)

// WithStore supplies an existing configuration store.
func WithStore(s *config.Store) Option {
	return func(c *Context) {
		if s != nil {
			c.store = s
		}
	}
}

// WithBuilder replaces the default console-backed instance builder.
func WithBuilder(b Builder) Option {
	return func(c *Context) {
		if b != nil {
			c.builder = b
		}
	}
}

// WithSink keeps the default builder but points it at the given sink
// instead of the console.
func WithSink(s sink.Sink) Option {
	return func(c *Context) {
		if s != nil {
			c.builder = sinkBuilder(s)
		}
	}
}

func sinkBuilder(s sink.Sink) Builder {
	return func(name string, lvl level.Level) Logger {
		return New(name, lvl, s)
	}
}

// NewContext creates a registry with an empty cache, a fresh store, and a
// console-backed default builder.
func NewContext(opts ...Option) *Context {
	c := &Context{
		cache: make(map[string]Logger),
		store: config.NewStore(),
	}
	c.builder = sinkBuilder(sink.NewConsole(sink.ConsoleConfig{}))
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetLogger returns the cached instance for a name, building one at the
// store-resolved level on first request. The empty name designates the
// root/unnamed logger. Concurrent first requests for one name always
// observe the same instance.
func (c *Context) GetLogger(name string) Logger {
	c.mu.RLock()
	l, ok := c.cache[name]
	c.mu.RUnlock()
	if ok {
		return l
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.cache[name]; ok {
		return l
	}

	if name == "" && c.root != nil {
		c.cache[name] = c.root
		return c.root
	}
	l = c.builder(name, c.store.ResolveLevel(name))
	c.cache[name] = l
	return l
}

// Root returns the root/unnamed logger.
func (c *Context) Root() Logger {
	return c.GetLogger("")
}

// SetLoggerLevel upserts a rule in the configuration store. Cached
// instances are deliberately left untouched; call Reset and re-acquire
// handles to pick the rule up.
func (c *Context) SetLoggerLevel(pattern string, lvl level.Level) error {
	return c.store.SetRule(pattern, lvl)
}

// GetConfiguredLevel resolves the level the store currently holds for a
// name without creating or consulting any instance.
func (c *Context) GetConfiguredLevel(name string) level.Level {
	return c.store.ResolveLevel(name)
}

// Reset drops the entire instance cache. Subsequent GetLogger calls
// rebuild against the current configuration. Getters running concurrently
// see either the old cache or the new empty one.
func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]Logger)
}

// SetLogger injects an explicit root instance. Future GetLogger calls for
// the root logger return it; an already-issued root handle is unaffected.
func (c *Context) SetLogger(l Logger) {
	if l == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.root = l
	delete(c.cache, "")
}

// SetNamedLoggerFactory replaces the builder used for future instances.
func (c *Context) SetNamedLoggerFactory(b Builder) {
	if b == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.builder = b
}

// LoadConfig loads rules from an explicit file path or from raw properties
// text. The cache is not cleared; callers wanting loaded rules to apply to
// already-created loggers must Reset explicitly.
func (c *Context) LoadConfig(pathOrText string, isPath bool) (config.LoadResult, error) {
	if isPath {
		return c.store.LoadFile(pathOrText)
	}
	return c.store.LoadText(pathOrText), nil
}

// LoadDiscovered loads the properties file found on the discovery search
// path, if any. A missing file silently leaves the store at its defaults.
func (c *Context) LoadDiscovered() (config.LoadResult, bool) {
	return c.store.LoadDiscovered()
}

// AddLogger resolves or creates the named instance and appends the given
// logger to its chain.
func (c *Context) AddLogger(name string, l Logger) {
	c.GetLogger(name).AddToChain(l)
}

// Store exposes the underlying configuration store for introspection.
func (c *Context) Store() *config.Store {
	return c.store
}

// Loggers returns the sorted names of all cached instances.
func (c *Context) Loggers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.cache))
	for name := range c.cache {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sync flushes every cached instance.
func (c *Context) Sync() error {
	c.mu.RLock()
	instances := make([]Logger, 0, len(c.cache))
	for _, l := range c.cache {
		instances = append(instances, l)
	}
	c.mu.RUnlock()

	var errs []error
	for _, l := range instances {
		if err := l.Sync(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
