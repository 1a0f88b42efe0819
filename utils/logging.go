package utils

import (
	"log/slog"
	"os"
)

// ConfigureLogging installs the process-wide slog handler, matching the
// teacher's inline main.go logging setup (text handler on stdout,
// level raised to Debug when the configuration asks for it).
func ConfigureLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
