// Package cli implements the canort command-line interface.
//
// The commands build canopies from flags or TOML scene files, print them as
// tables, look up the layer at an elevation, render stack diagrams and browse
// a canopy interactively. The CLI is built using cobra and logs via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - canopy: Build a canopy from per-layer parameter lists
//   - uniform: Build a canopy of identical layers
//   - scene: Load and summarize a TOML scene (canopy, soil, sensor)
//   - probe: Find the layer containing given elevations
//   - render: Draw the layer stack as DOT or SVG
//   - inspect: Browse a scene's layers interactively
//   - sensors: List the known radiometer presets
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Built canopy with 3 layers (1ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports scene and render events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("Loading scene", "source", source)
}

func (h *logHooks) OnLoadComplete(_ context.Context, source string, layers int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Scene load failed", "source", source, "duration", d.Round(time.Microsecond), "err", err)
		return
	}
	h.logger.Debug("Scene loaded", "source", source, "layers", layers, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnRenderStart(_ context.Context, format string, layers int) {
	h.logger.Debug("Rendering", "format", format, "layers", layers)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("Rendered", "format", format, "bytes", size, "duration", d.Round(time.Microsecond))
}
