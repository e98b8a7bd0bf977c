package sink

import (
	"fmt"

	"github.com/creasty/defaults"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/leeforge/logtree/level"
)

// FileConfig configures the rotated log file sink.
type FileConfig struct {
	// Filename is the log file path. Required.
	Filename string

	// MaxSize is the maximum size in megabytes before rotation.
	MaxSize int `default:"100"`

	// MaxBackups is the maximum number of rotated files to retain.
	MaxBackups int `default:"10"`

	// MaxAge is the maximum number of days to retain rotated files.
	MaxAge int `default:"7"`

	// Compress gzips rotated files.
	Compress bool `default:"true"`

	// Format is the line encoding, json or console.
	Format string `default:"json"`

	// TimeFormat is the Go time layout for the entry timestamp.
	TimeFormat string `default:"2006/01/02 - 15:04:05"`
}

// File writes records to a size-rotated log file.
type File struct {
	zl *zap.Logger
	lj *lumberjack.Logger
}

// NewFile creates a file sink for the given config.
func NewFile(cfg FileConfig) (*File, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, err
	}
	if cfg.Filename == "" {
		return nil, fmt.Errorf("file sink requires a filename")
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}

	encCfg := encoderConfig(cfg.TimeFormat, false)
	var enc zapcore.Encoder
	if cfg.Format == "console" {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(lj), zapcore.DebugLevel)
	return &File{
		zl: zap.New(core, zap.WithFatalHook(zapcore.WriteThenNoop)),
		lj: lj,
	}, nil
}

// Write implements Sink.
func (f *File) Write(lvl level.Level, name, msg string, cause error) {
	writeZap(f.zl, lvl, name, msg, cause)
}

// Sync implements Syncer.
func (f *File) Sync() error {
	return f.zl.Sync()
}

// Close flushes and closes the underlying file.
func (f *File) Close() error {
	_ = f.zl.Sync()
	return f.lj.Close()
}

var (
	_ Sink   = (*File)(nil)
	_ Syncer = (*File)(nil)
)
