package level

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level represents the severity of a log message. Levels are totally
// ordered; Off is a sentinel that disables all output.
type Level int8

const (
	// Trace is for extremely verbose diagnostic output.
	Trace Level = iota
	// Debug is for verbose diagnostic output.
	Debug
	// Info is for normal operational events.
	Info
	// Warn is for unexpected conditions that don't prevent operation.
	Warn
	// Error is for failures that affect functionality.
	Error
	// Fatal is for unrecoverable failures.
	Fatal
	// Off disables all output. No message level satisfies it.
	Off
)

// String returns the uppercase canonical name of the level.
func (l Level) String() string {
	switch l {
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	case Off:
		return "OFF"
	default:
		return fmt.Sprintf("LEVEL(%d)", int8(l))
	}
}

// Parse parses a level name (case-insensitive). The second return value
// reports whether the name was recognized.
func Parse(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return Trace, true
	case "debug":
		return Debug, true
	case "info":
		return Info, true
	case "warn", "warning":
		return Warn, true
	case "error":
		return Error, true
	case "fatal":
		return Fatal, true
	case "off", "none":
		return Off, true
	default:
		return Info, false
	}
}

// Enabled reports whether a message at level l passes a logger whose
// minimum level is min.
func (l Level) Enabled(min Level) bool {
	return min != Off && l != Off && l >= min
}

// Zap maps the level onto the closest zapcore.Level for zap-backed sinks.
// Trace maps to zapcore.DebugLevel since zap has no trace level; Off must
// be filtered by the caller before reaching a zap core.
func (l Level) Zap() zapcore.Level {
	switch l {
	case Trace, Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warn:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	case Fatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("unknown level name %q", string(text))
	}
	*l = parsed
	return nil
}
