// SPDX-License-Identifier: Apache-2.0

package typewriter

import (
	"context"
	"log/slog"
)

type sloggerKey struct{}

// Slogger returns the [slog.Logger] from the context, or [slog.Default] if
// none is set.
//
// [Sequencer.Do] reports queue progress through this logger at debug level.
// It is also useful for host code that wants to log around a drain with the
// same logger the engine uses.
func Slogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(sloggerKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// WithSlogger returns a context carrying the given [slog.Logger] for
// structured logging.
//
// This is typically applied once to the context passed to [Sequencer.Do]:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	inputs, err := tw.Do(typewriter.WithSlogger(ctx, logger))
func WithSlogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, sloggerKey{}, logger)
}
