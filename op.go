// SPDX-License-Identifier: Apache-2.0

package typewriter

import (
	"io"
	"time"
)

// opResult is the settled outcome of a single operation.
//
// hasLine distinguishes a request-line operation that read an empty line
// from operations that produce no input at all.
type opResult struct {
	line    string
	hasLine bool
	err     error
}

// An op is a lazily-invoked operation factory.
//
// Calling it performs the side-effecting setup of the operation (starting a
// timer, issuing a write, issuing a read) and returns a cancel callback
// together with the pending result. Nothing happens before the call: the
// builder methods only queue factories, so constructing a sequence never
// touches the sink or source.
//
// done is buffered with capacity 1 and settled exactly once. cancel only has
// an effect while done is unsettled; it then fails the operation with
// [ErrCanceled]. Calling cancel after the operation settled, or more than
// once, is harmless.
type op func() (cancel func(), done <-chan opResult)

// waitOp returns a pure timer operation for the given duration.
func waitOp(d time.Duration) op {
	return func() (func(), <-chan opResult) {
		done := make(chan opResult, 1)
		timer := time.AfterFunc(d, func() {
			done <- opResult{}
		})
		cancel := func() {
			// Stop reports whether it won the race against the timer
			// firing; only the winning side settles done.
			if timer.Stop() {
				done <- opResult{err: ErrCanceled}
			}
		}
		return cancel, done
	}
}

// emitOp returns an operation that writes text to the sink.
//
// The write is issued upon invocation. An in-flight write cannot be aborted,
// only its result ignored, so cancel is a no-op; a signal that fires during
// the write takes effect on the next cancellable operation instead. A sink
// failure settles the operation with a [SinkError].
func emitOp(w io.Writer, text string) op {
	return func() (func(), <-chan opResult) {
		done := make(chan opResult, 1)
		go func() {
			if _, err := io.WriteString(w, text); err != nil {
				done <- opResult{err: &SinkError{Err: err}}
				return
			}
			done <- opResult{}
		}()
		return func() {}, done
	}
}

// requestLineOp returns an operation that reads one line from the source.
//
// The read starts upon invocation and the operation settles with the decoded
// line once it arrives. A pending read is not forcibly aborted: cancel is a
// no-op, and a signal that fires mid-read only takes effect after the line
// (or the read error) comes in.
func requestLineOp(src Source) op {
	return func() (func(), <-chan opResult) {
		done := make(chan opResult, 1)
		if src == nil {
			done <- opResult{err: ErrNoSource}
			return func() {}, done
		}
		go func() {
			line, err := src.ReadLine()
			if err != nil {
				done <- opResult{err: err}
				return
			}
			done <- opResult{line: line, hasLine: true}
		}()
		return func() {}, done
	}
}
