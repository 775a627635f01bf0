package svgpattern

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false, so log calls
// cost no formatting.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(silentHandler{})

// current is the logger shared by svgpattern and its sub-packages.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the log output of svgpattern, render, config and
// imagefill to l. Nothing is logged until it is called; nil silences
// logging again.
//
// Levels:
//   - [slog.LevelDebug]: patterns added and removed, notification rounds
//   - [slog.LevelInfo]: library files loaded, watch mode started
//   - [slog.LevelWarn]: skipped patterns, failed re-renders and reloads
//
// Example:
//
//	svgpattern.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set with SetLogger. It is safe to call from
// any goroutine, including while SetLogger runs.
func Logger() *slog.Logger {
	return current.Load()
}
