package logger

import (
	"sync"

	"github.com/leeforge/logtree/config"
	"github.com/leeforge/logtree/level"
)

var (
	defaultCtx *Context
	defaultMu  sync.RWMutex
	once       sync.Once
)

// initDefault builds the process-default context, loading any discovered
// properties file. A missing file is not an error; the root default stands.
func initDefault() {
	once.Do(func() {
		ctx := NewContext()
		ctx.LoadDiscovered()
		defaultCtx = ctx
	})
}

// Default returns the process-default registry context.
func Default() *Context {
	defaultMu.RLock()
	if defaultCtx != nil {
		defer defaultMu.RUnlock()
		return defaultCtx
	}
	defaultMu.RUnlock()

	initDefault()

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCtx
}

// SetDefault replaces the process-default context.
func SetDefault(ctx *Context) {
	if ctx == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCtx = ctx
}

// Package-level convenience functions that delegate to the default context.

// GetLogger returns a named logger from the default context.
func GetLogger(name string) Logger {
	return Default().GetLogger(name)
}

// Root returns the root/unnamed logger from the default context.
func Root() Logger {
	return Default().Root()
}

// SetLoggerLevel upserts a rule in the default context's store.
func SetLoggerLevel(pattern string, lvl level.Level) error {
	return Default().SetLoggerLevel(pattern, lvl)
}

// GetConfiguredLevel resolves a name against the default context's store.
func GetConfiguredLevel(name string) level.Level {
	return Default().GetConfiguredLevel(name)
}

// Reset drops the default context's instance cache.
func Reset() {
	Default().Reset()
}

// SetLogger injects an explicit root instance into the default context.
func SetLogger(l Logger) {
	Default().SetLogger(l)
}

// SetNamedLoggerFactory replaces the default context's instance builder.
func SetNamedLoggerFactory(b Builder) {
	Default().SetNamedLoggerFactory(b)
}

// LoadConfig loads rules into the default context from a path or raw text.
func LoadConfig(pathOrText string, isPath bool) (config.LoadResult, error) {
	return Default().LoadConfig(pathOrText, isPath)
}

// AddLogger appends a delegate to the named logger's chain in the default
// context.
func AddLogger(name string, l Logger) {
	Default().AddLogger(name, l)
}

// Sync flushes every cached instance of the default context.
func Sync() error {
	return Default().Sync()
}
