package buildprops

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-logr/logr"
)

// NewLogger returns a logr.Logger backed by a slog text handler writing
// to w. Each increment of verbosity lowers the minimum level by one step,
// from errors only at 0 down to debug at 3.
func NewLogger(w io.Writer, verbosity int) logr.Logger {
	return logr.FromSlogHandler(
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.Level(int(slog.LevelError) - 4*verbosity),
		}),
	)
}

// WithLogger returns a copy of ctx carrying log.
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// LoggerFrom returns the logr.Logger carried by ctx,
// or one that discards everything.
func LoggerFrom(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
