package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chiller/stampsim/internal/assert"
	"github.com/chiller/stampsim/logger"
)

var backends = []string{logger.BackendSlog, logger.BackendZap, logger.BackendZerolog}

func TestLoggerLevels(t *testing.T) {
	for _, backend := range backends {
		for _, format := range []string{logger.FormatText, logger.FormatJSON} {
			var b bytes.Buffer
			l, err := logger.New(logger.Options{
				Backend: backend,
				Level:   "info",
				Format:  format,
				Writer:  &b,
			})
			assert.Equal(t, err, nil)

			l.Trace("Trace")
			assertEmpty(t, &b)
			l.Debug("Debug", "key", 1)
			assertEmpty(t, &b)

			l.Info("Info", "interval", 3)
			checkRecord(t, &b, "Info", "interval")
			l.Warn("Warn", "interval", 4)
			checkRecord(t, &b, "Warn", "interval")
			l.Error("Error", "interval", 5)
			checkRecord(t, &b, "Error", "interval")
		}
	}
}

func TestLoggerTrace(t *testing.T) {
	for _, backend := range backends {
		var b bytes.Buffer
		l, err := logger.New(logger.Options{
			Backend: backend,
			Level:   "trace",
			Writer:  &b,
		})
		assert.Equal(t, err, nil)

		l.Trace("Trace", "offset", 7)
		checkRecord(t, &b, "Trace", "offset")
	}

	var b bytes.Buffer
	l, _ := logger.New(logger.Options{Level: "trace", Writer: &b})
	l.Trace("Trace")
	if !strings.Contains(b.String(), "level=TRACE") {
		t.Fatalf("trace level not rendered: %s", b.String())
	}
}

func TestLoggerOff(t *testing.T) {
	for _, backend := range backends {
		var b bytes.Buffer
		l, err := logger.New(logger.Options{
			Backend: backend,
			Level:   "off",
			Writer:  &b,
		})
		assert.Equal(t, err, nil)
		assert.Equal[logger.Logger](t, l, logger.NoOpLogger{})

		l.Error("Error")
		assertEmpty(t, &b)
	}
}

func TestLoggerOptionsInvalid(t *testing.T) {
	_, err := logger.New(logger.Options{Backend: "logrus", Level: "info"})
	assert.NotEqual(t, err, nil)

	_, err = logger.New(logger.Options{Backend: logger.BackendSlog, Level: "verbose"})
	assert.NotEqual(t, err, nil)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level logger.Level
	}{
		{"trace", logger.LevelTrace},
		{"DEBUG", logger.LevelDebug},
		{" info ", logger.LevelInfo},
		{"warn", logger.LevelWarn},
		{"error", logger.LevelError},
		{"off", logger.LevelOff},
	}
	for _, tt := range tests {
		level, err := logger.ParseLevel(tt.name)
		assert.Equal(t, err, nil)
		assert.Equal(t, level, tt.level)
	}
	assert.Equal(t, logger.LevelWarn.String(), "WARN")
}

func assertEmpty(t *testing.T, b *bytes.Buffer) {
	t.Helper()
	if b.Len() != 0 {
		t.Fatalf("log msg is not empty: %s", b.String())
	}
}

func checkRecord(t *testing.T, b *bytes.Buffer, msg, key string) {
	t.Helper()
	record := b.String()
	b.Reset()
	if !strings.Contains(record, msg) || !strings.Contains(record, key) {
		t.Fatalf("invalid log record: %s", record)
	}
}
