package log

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Level  string `config:"LOG_LEVEL" default:"info"`
	Format string `config:"LOG_FORMAT" default:"json"`
	// Output defaults to stdout.
	Output io.Writer
}

// Initialize registers a *zerolog.Logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger, err := NewLogger(il.Level, il.Format, il.Output)
	if err != nil {
		return ctx, err
	}
	depend.Register(&logger)
	return ctx, nil
}

// NewLogger builds the service logger. Format is "json" or "console".
func NewLogger(level, format string, out io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Logger{}, err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if out == nil {
		out = os.Stdout
	}
	if strings.EqualFold(format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "filmrecommender").
		Logger(), nil
}
