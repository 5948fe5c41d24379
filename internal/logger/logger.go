// Package logger configures the process-wide slog logger. The console
// format uses tint for colored, human-readable output; the json format is
// for log collection.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

var defaultLogger *slog.Logger

// Init builds and installs the default logger. Level is one of debug, info,
// warn, error (defaults to info); format is "json" or console.
func Init(level, format string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      lvl,
			TimeFormat: time.DateTime,
			NoColor:    !isTerminal(os.Stdout),
		})
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Get returns the configured logger, installing a console logger with
// defaults if Init has not been called yet.
func Get() *slog.Logger {
	if defaultLogger == nil {
		Init("info", "console")
	}
	return defaultLogger
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
