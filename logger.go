package gauge

import (
	"log/slog"
	"sync/atomic"
)

var (
	silent = slog.New(slog.DiscardHandler)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(silent)
}

// SetLogger sets the logger shared by gauge and the packages built on it
// (driver, sensor, integration/ebitengauge). Nothing is logged until it is
// called; nil restores that.
//
// Levels:
//   - [slog.LevelDebug]: surface size changes and cached layer regeneration
//   - [slog.LevelInfo]: driver and producer start and stop
//   - [slog.LevelWarn]: dropped or malformed samples
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Load()
}
