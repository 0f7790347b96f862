package occlusion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ConfigError is returned by New when the construction parameters are
// invalid: non-positive width or height, a nil camera, or a non-positive
// near plane.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("occlusion: invalid configuration: %s", e.Reason)
}

// ShapeError is returned when an occluder's index buffer is malformed: its
// length is not a multiple of three, or an index falls outside the
// position buffer.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("occlusion: malformed occluder: %s", e.Reason)
}

// ErrFrameInvalid is returned by Depth and Cull when a previous Render
// call raised a ShapeError on an occluder other than its first, so earlier
// occluders may have left the depth buffer partly written. Call Render
// again to clear it.
var ErrFrameInvalid = errors.New("occlusion: frame invalidated by a prior error, call Render to clear it")

// nopHandler discards every log record without formatting it.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used for NumericWarning events. The
// package is silent by default; pass nil to restore that behavior.
//
// NumericWarning is logged, not returned: spec I1 treats an out-of-range
// depth value as recoverable, so the renderer clamps it and continues.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the currently configured logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func warnNumeric(msg string, args ...any) {
	Logger().Warn(msg, args...)
}
