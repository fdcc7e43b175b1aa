package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Options selects the log level and output format.
type Options struct {
	// Level is one of debug, info, warn or error. Unknown values mean info.
	Level string
	// Format is json (default) or text. Text output is colourised on terminals.
	Format string
}

// New returns a structured logger writing to stdout.
func New(o Options) *slog.Logger {
	return NewWithWriter(os.Stdout, o)
}

// NewWithWriter returns a structured logger writing to w.
func NewWithWriter(w io.Writer, o Options) *slog.Logger {
	level := ParseLevel(o.Level)
	if strings.EqualFold(o.Format, "text") {
		noColor := true
		if f, ok := w.(*os.File); ok {
			noColor = !isatty.IsTerminal(f.Fd())
		}
		return slog.New(tint.NewHandler(w, &tint.Options{
			NoColor:   noColor,
			Level:     level,
			AddSource: level < slog.LevelInfo,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
