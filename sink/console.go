package sink

import (
	"os"

	"github.com/creasty/defaults"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leeforge/logtree/level"
)

// ConsoleConfig configures the console sink.
type ConsoleConfig struct {
	// Stderr writes to stderr instead of stdout.
	Stderr bool `default:"false"`

	// Color enables ANSI-colored level names.
	Color bool `default:"true"`

	// TimeFormat is the Go time layout for the line timestamp.
	TimeFormat string `default:"2006/01/02 - 15:04:05"`
}

// Console renders records through zap's console encoder to a terminal
// stream. It applies no level filtering of its own.
type Console struct {
	zl *zap.Logger
}

// NewConsole creates a console sink. Zero-value config gets defaults.
func NewConsole(cfg ConsoleConfig) *Console {
	_ = defaults.Set(&cfg)

	out := zapcore.Lock(os.Stdout)
	if cfg.Stderr {
		out = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig(cfg.TimeFormat, cfg.Color)),
		out,
		zapcore.DebugLevel,
	)
	return &Console{
		zl: zap.New(core, zap.WithFatalHook(zapcore.WriteThenNoop)),
	}
}

// Write implements Sink.
func (c *Console) Write(lvl level.Level, name, msg string, cause error) {
	writeZap(c.zl, lvl, name, msg, cause)
}

// Sync implements Syncer.
func (c *Console) Sync() error {
	return c.zl.Sync()
}

var (
	_ Sink   = (*Console)(nil)
	_ Syncer = (*Console)(nil)
)
