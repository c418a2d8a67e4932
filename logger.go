package ggplot

import (
	"log/slog"
	"sync/atomic"
)

// silent is the package default. Its handler reports every level as
// disabled, so Debug calls in the frame loop cost nothing.
var silent = slog.New(slog.DiscardHandler)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(silent)
}

// SetLogger sets the logger used by Contexts created without WithLogger and
// by integration/ebitenplot. Pass nil to go back to no output.
// It is safe to call while charts are drawing.
//
// Debug records cover skipped charts, axis corrections, zoom to selection
// and popup toggles. Warn records report series that could not be drawn.
//
//	ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
