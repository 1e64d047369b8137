// Package logging wraps zap with gofaconde's own severity naming and an
// optional rotating file sink, stripped of the policy-enforcement and
// middleware-pipeline machinery a larger service platform would carry —
// this library only ever needs a logger for its own CLI, not a sink
// routing layer for a fleet of services.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSink configures rotation for a log file sink, delegated straight to
// lumberjack.
type FileSink struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Config configures a Logger.
type Config struct {
	// DefaultLevel is the minimum severity emitted.
	DefaultLevel string

	// File, if non-nil, adds a rotating file sink alongside stderr.
	File *FileSink

	// Development enables zap's human-readable console encoder instead of
	// JSON; meant for interactive CLI use, not production log aggregation.
	Development bool
}

// Logger wraps a zap.Logger and the atomic level backing it, so the
// severity can be raised or lowered at runtime (e.g. from a CLI -v flag)
// without rebuilding the sink chain.
type Logger struct {
	zap    *zap.Logger
	level  zap.AtomicLevel
	closer func() error
}

// New builds a Logger from config.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = &Config{DefaultLevel: "INFO"}
	}

	level := zap.NewAtomicLevelAt(ParseSeverity(config.DefaultLevel).ToZapLevel())

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if config.Development {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}

	var closer func() error
	if config.File != nil {
		roller := &lumberjack.Logger{
			Filename:   config.File.Path,
			MaxSize:    config.File.MaxSizeMB,
			MaxBackups: config.File.MaxBackups,
			MaxAge:     config.File.MaxAgeDays,
			Compress:   config.File.Compress,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(roller), level))
		closer = roller.Close
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	return &Logger{zap: zl, level: level, closer: closer}, nil
}

// SetLevel adjusts the minimum emitted severity without rebuilding sinks.
func (l *Logger) SetLevel(s Severity) {
	l.level.SetLevel(s.ToZapLevel())
}

// With returns a child logger carrying the given structured fields on
// every subsequent entry.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zap: l.zap.With(fields...), level: l.level, closer: l.closer}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.zap.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.zap.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Close flushes buffered log entries and closes any rotating file sink.
func (l *Logger) Close() error {
	var err error
	if l.closer != nil {
		err = multierr.Append(err, l.closer())
	}
	return multierr.Append(err, l.zap.Sync())
}

// Fatal logs msg at ERROR severity (zap's own Fatal level would exit the
// process), then panics rather than calling os.Exit directly — a library
// should never terminate its caller's process, so recovering the panic is
// left to the caller.
func (l *Logger) Fatal(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
	panic(fmt.Sprintf("gofaconde: fatal: %s", msg))
}
