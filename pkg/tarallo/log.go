package tarallo

import (
	"log/slog"

	"github.com/BrandonKowalski/tarallo/pkg/tarallo/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Call before the first logger
// use to take effect; without it, logs go to stdout only.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging. The
// library itself logs through a separate internal logger, so host log
// levels and library log levels stay independent.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g. "debug",
// "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the minimum log level for the library's own
// diagnostics (icon loading, touch devices). Defaults to info.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// CloseLogger flushes and closes the log file, if one was configured.
func CloseLogger() {
	internal.CloseLogger()
}
