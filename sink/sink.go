// Package sink defines the backend contract the logging core writes
// through, plus the concrete backends: console and rotated-file sinks built
// on zap, an adapter for third-party zap loggers, a plain writer sink for
// debug streams, and an in-memory capturing sink for tests.
package sink

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leeforge/logtree/level"
)

// Sink accepts one formatted record and its severity. It is the only
// contract the logging core depends on; how a record is rendered or
// persisted is entirely the sink's concern.
type Sink interface {
	Write(lvl level.Level, name, msg string, cause error)
}

// Syncer is implemented by sinks that buffer and can flush.
type Syncer interface {
	Sync() error
}

// defaultTimeFormat matches the framework's log line timestamp layout.
const defaultTimeFormat = "2006/01/02 - 15:04:05"

// encoderConfig builds the shared zapcore encoder configuration.
func encoderConfig(timeFormat string, color bool) zapcore.EncoderConfig {
	if timeFormat == "" {
		timeFormat = defaultTimeFormat
	}
	encodeLevel := zapcore.CapitalLevelEncoder
	if color {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     timeEncoder(timeFormat),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func timeEncoder(layout string) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(layout))
	}
}

// writeZap delivers a record through a zap logger. Level filtering already
// happened in the core; the zap core sits fully open. Fatal records are
// written without terminating the process, which is why the owning sinks
// construct their loggers with a no-op fatal hook.
func writeZap(zl *zap.Logger, lvl level.Level, name, msg string, cause error) {
	if name != "" {
		zl = zl.Named(name)
	}

	var fields []zap.Field
	if lvl == level.Trace {
		// zap has no trace level; keep the original severity visible.
		fields = append(fields, zap.String("severity", "trace"))
	}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
	}

	if ce := zl.Check(lvl.Zap(), msg); ce != nil {
		ce.Write(fields...)
	}
}
