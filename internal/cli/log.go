// Package cli implements the isogrid command-line interface.
//
// The commands wrap the geometry packages: converting between tiles and
// screen pixels, measuring and fitting scenes, rendering snapshots, importing
// Tiled maps and serving the HTTP API. The CLI is built using cobra and logs
// through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - project, locate: tile to screen and screen to tile
//   - subset: enumerate the tiles of a rectangle
//   - bounds, fit: measure a scene and fit it to a viewport
//   - render: write SVG, DOT, JSON, PNG or PDF snapshots
//   - explore: interactive terminal explorer of the projection
//   - import-tiled: convert a Tiled isometric map into a scene file
//   - serve: run the HTTP API
//   - cache: manage the local result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Configuration
//
// Defaults for the view, the cache backend and the server address are read
// from $XDG_CONFIG_HOME/isogrid/config.toml or the file given with --config.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, with short wall-clock
// timestamps ("14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command and logs its completion.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time and any extra key/value pairs, e.g.
// "Rendered rack.toml elapsed=1.234s nodes=42".
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append([]any{"elapsed", elapsed}, keyvals...)...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or log.Default() when the
// root pre-run did not attach one (tests calling a run function directly).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
