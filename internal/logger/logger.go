package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the minimal interface the rest of the app logs through,
// so the implementation can be swapped without touching call sites.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Log is the global logger instance. It works at info level even when
// InitFromEnv is never called.
var Log Logger = New("info")

// InitFromEnv reads the log level from LOG_LEVEL and rebuilds the
// global logger. Empty or unknown values fall back to info.
func InitFromEnv() {
	level := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if level == "" {
		level = "info"
	}
	Log = New(level)
}

func New(level string) Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	l := slog.NewWithHandlers(handler.NewConsoleHandler(levels))
	return l
}
