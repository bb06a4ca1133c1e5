package gfx

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger routes the package's diagnostics to the given logger. The
// default is silence; passing nil restores it.
func SetLogger(logger *slog.Logger) {
	pkgLogger.Store(logger)
}

func logDebug(msg string, args ...any) {
	if logger := pkgLogger.Load(); logger != nil {
		logger.Debug(msg, args...)
	}
}

func logError(msg string, args ...any) {
	if logger := pkgLogger.Load(); logger != nil {
		logger.Error(msg, args...)
	}
}
