package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"
)

// Supported backends.
const (
	BackendSlog    = "slog"
	BackendZap     = "zap"
	BackendZerolog = "zerolog"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options selects and configures a Logger backend.
type Options struct {
	Backend string
	Level   string
	Format  string

	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// New builds a Logger from opts. A level of "off" yields a [NoOpLogger].
func New(opts Options) (Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if level >= LevelOff {
		return NoOpLogger{}, nil
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	switch opts.Backend {
	case "", BackendSlog:
		return NewSlogLogger(context.Background(),
			slog.New(NewSlogHandler(w, opts.Format, level))), nil
	case BackendZap:
		return NewZapLogger(zap.New(NewZapCore(w, opts.Format, level)), level), nil
	case BackendZerolog:
		return NewZerologLogger(NewZerolog(w, opts.Format, level)), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}
