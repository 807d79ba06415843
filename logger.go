package hellocanvas

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that the OS
// signal watcher and the draw loop can both log.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for hellocanvas and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// The logger is also handed to gg, so drawing-library diagnostics (CPU
// fallback, accelerator selection) end up in the same place.
//
// Log levels used:
//   - [slog.LevelDebug]: per-frame sizes, texture (re)creation
//   - [slog.LevelInfo]: window and font lifecycle
//   - [slog.LevelError]: fatal loop failures, see [LogError]
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// LogError reports a failed call at error level: one record for err itself,
// followed by one "Caused by" record per error in its wrap chain.
func LogError(method string, err error) {
	if err == nil {
		return
	}
	l := Logger()
	l.Error(method+"() failed", "err", err.Error())
	for _, cause := range Causes(err) {
		l.Error("  Caused by", "err", cause.Error())
	}
}

// Causes returns the errors wrapped by err, outermost first, excluding err.
// Joined errors are walked depth-first in join order.
func Causes(err error) []error {
	var out []error
	var walk func(error)
	walk = func(e error) {
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if inner == nil {
					continue
				}
				out = append(out, inner)
				walk(inner)
			}
		default:
			if inner := errors.Unwrap(e); inner != nil {
				out = append(out, inner)
				walk(inner)
			}
		}
	}
	walk(err)
	return out
}
