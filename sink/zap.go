package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leeforge/logtree/level"
)

// Zap adapts an arbitrary third-party *zap.Logger as a Sink, so records
// can be forwarded into an application's existing zap pipeline. The
// wrapped logger's own level configuration still applies on top of the
// core's filtering.
type Zap struct {
	zl *zap.Logger
}

// NewZap wraps an existing zap logger. Fatal records are written without
// terminating the process.
func NewZap(zl *zap.Logger) *Zap {
	return &Zap{
		zl: zl.WithOptions(zap.WithFatalHook(zapcore.WriteThenNoop)),
	}
}

// Write implements Sink.
func (z *Zap) Write(lvl level.Level, name, msg string, cause error) {
	writeZap(z.zl, lvl, name, msg, cause)
}

// Sync implements Syncer.
func (z *Zap) Sync() error {
	return z.zl.Sync()
}

var (
	_ Sink   = (*Zap)(nil)
	_ Syncer = (*Zap)(nil)
)
