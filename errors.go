// SPDX-License-Identifier: Apache-2.0

package typewriter

import (
	"errors"
	"fmt"
)

// ErrCanceled is the distinguished condition an operation settles with when
// its cancel callback fires before the underlying effect completes.
//
// The execution loop treats it as a normal termination: [Sequencer.Do] stops
// draining the queue and returns nil, together with whatever inputs were
// collected up to that point. It never surfaces to the caller as a failure.
var ErrCanceled = errors.New("operation canceled")

// ErrExecuting is the misuse condition for mutating a sequencer that is
// currently draining its queue.
//
// The builder methods ([Sequencer.Wait], [Sequencer.Write], [Sequencer.Input])
// panic with ErrExecuting when called during an active [Sequencer.Do]; a
// concurrent Do call on the same sequencer returns it as an error. The caller
// must wait for the active Do to complete.
var ErrExecuting = errors.New("cannot add operation while executing")

// ErrNoSource is returned by [Sequencer.Do] when a queued input operation
// runs on a sequencer whose source was explicitly set to nil.
var ErrNoSource = errors.New("no input source configured")

// SinkError wraps a failure reported by the output sink during an emit
// operation.
//
// Use [errors.As] to detect it and [errors.Is] against the wrapped cause:
//
//	_, err := tw.Do(ctx)
//	var sinkErr *typewriter.SinkError
//	if errors.As(err, &sinkErr) {
//	    log.Printf("output broke down: %v", sinkErr.Err)
//	}
type SinkError struct {
	// Err is the underlying error from the sink.
	Err error
}

// Error returns the formatted error message.
func (e *SinkError) Error() string {
	return fmt.Sprintf("sink: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SinkError) Unwrap() error {
	return e.Err
}
