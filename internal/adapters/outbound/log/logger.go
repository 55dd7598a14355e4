package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog logger writing to w.
// format "console" enables the human readable writer; anything else writes JSON lines.
func NewLogger(w io.Writer, level, format string) (*zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: w}
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "foodapp").
		Logger()

	return &logger, nil
}

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Level  string `config:"LOG_LEVEL" default:"info"`
	Format string `config:"LOG_FORMAT" default:"json"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger, err := NewLogger(os.Stdout, il.Level, il.Format)
	if err != nil {
		return ctx, err
	}
	depend.Register(logger)
	return ctx, nil
}
