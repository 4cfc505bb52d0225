package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the [Logger] interface on top of a zap
// SugaredLogger. zap has no trace level, so trace records are written
// at debug level when trace logging is enabled.
type ZapLogger struct {
	sugar *zap.SugaredLogger
	level Level
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger returns a new [ZapLogger] wrapping logger.
// It will panic if the logger is nil.
func NewZapLogger(logger *zap.Logger, level Level) *ZapLogger {
	if logger == nil {
		panic("nil logger")
	}
	return &ZapLogger{
		sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar(),
		level: level,
	}
}

// NewZapCore returns a core writing console or JSON encoded entries to w.
func NewZapCore(w io.Writer, format string, level Level) zapcore.Core {
	var encoder zapcore.Encoder
	if format == FormatJSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(zapLevel(level)))
}

func zapLevel(level Level) zapcore.Level {
	switch {
	case level <= LevelDebug:
		return zapcore.DebugLevel
	case level <= LevelInfo:
		return zapcore.InfoLevel
	case level <= LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Trace logs at the trace level.
func (l *ZapLogger) Trace(msg string, args ...any) {
	if l.level <= LevelTrace {
		l.sugar.Debugw(msg, args...)
	}
}

// Debug logs at the debug level.
func (l *ZapLogger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

// Info logs at the info level.
func (l *ZapLogger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

// Warn logs at the warn level.
func (l *ZapLogger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

// Error logs at the error level.
func (l *ZapLogger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
