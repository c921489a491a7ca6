// SPDX-License-Identifier: Apache-2.0

package typewriter

import (
	"context"
	"errors"
	"time"
)

// Do drains the queue, executing every operation strictly in order, and
// returns the lines collected by [Sequencer.Input] operations.
//
// ctx is the external cancellation signal. While an operation is in flight
// its cancel callback is the only listener attached to the signal; the
// listener is registered before awaiting the operation and removed once it
// settles, so cancellation only ever affects the operation currently in
// flight. A canceled operation stops the drain without an error: Do returns
// nil and the inputs collected so far. Any other operation failure — a sink
// or source breakdown — is returned to the caller.
//
// Whatever the exit path, Do leaves the sequencer idle with an empty queue.
// Partial progress is discarded, never replayed; a subsequent Do on the same
// instance executes zero operations until the queue is rebuilt.
//
// Calling Do concurrently on the same sequencer is not supported; the second
// call fails fast with [ErrExecuting]. Progress is reported at debug level
// through the context logger (see [WithSlogger]).
func (s *Sequencer) Do(ctx context.Context) (lines []string, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !s.executing.CompareAndSwap(false, true) {
		return nil, ErrExecuting
	}

	logger := Slogger(ctx)
	start := time.Now()
	logger.DebugContext(ctx, "draining queue", "operations", len(s.queue))

	defer func() {
		s.queue = nil
		lines = s.inputs
		s.inputs = nil
		s.executing.Store(false)
		logger.DebugContext(ctx, "queue drained",
			"inputs", len(lines), "duration", time.Since(start))
	}()

	for _, invoke := range s.queue {
		cancel, done := invoke()
		stop := context.AfterFunc(ctx, cancel)
		result := <-done
		stop()

		if result.hasLine {
			s.inputs = append(s.inputs, result.line)
		}
		if result.err != nil {
			if errors.Is(result.err, ErrCanceled) {
				logger.DebugContext(ctx, "execution canceled")
				return
			}
			err = result.err
			return
		}
	}
	return
}
