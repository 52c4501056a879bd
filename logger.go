package gfx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called concurrently with logging from the graphics goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := slog.New(nopHandler{})
	loggerPtr.Store(l)
}

// SetLogger configures the logger for gfx. By default gfx produces no log
// output. Every failed driver call and every rejected input produces exactly
// one record naming the operation and the resource involved.
//
// Log levels used by gfx:
//   - [slog.LevelWarn]: degraded but continuing (uniform table cap reached,
//     uniform redeclared with a different type)
//   - [slog.LevelError]: an operation failed and no resource was created
//
// Pass nil to restore the default silent behavior.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger gfx currently writes to. The default logger
// discards everything.
func Logger() *slog.Logger { return loggerPtr.Load() }

// slogger returns the current package logger.
func slogger() *slog.Logger { return loggerPtr.Load() }
