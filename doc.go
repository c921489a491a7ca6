// SPDX-License-Identifier: Apache-2.0

// Package typewriter provides a sequenced, cancellable delayed-output
// engine: build a queue of timed operations — pauses, character-by-character
// text emission, line-input requests — and execute it strictly in order,
// with the ability to abort mid-drain.
//
// # The Problem
//
// Typewriter-style console output looks simple until cancellation enters the
// picture. Pacing text one character at a time means dozens of timers; mixing
// in prompts means reads interleaved with writes; letting the user abort
// means every one of those pending effects needs a way to be stopped — but
// only the one currently in flight, never one that already completed.
// Hand-rolling this tangles timers, goroutines, and channel plumbing into
// the presentation logic.
//
// Package typewriter handles the mechanics. Operations are queued lazily and
// instantiated one at a time, so nothing touches the terminal before its
// turn, and a single context cancels the whole drain cooperatively.
//
// # Core Concepts
//
// A [Sequencer] is a fluent builder over an ordered operation queue:
//
//	tw := typewriter.New(os.Stdout)
//	tw.Write("Hello, stranger.", typewriter.Over(2*time.Second)).
//	    Wait(typewriter.Over(time.Second)).
//	    Input("\nWhat is your name? ").
//	    Write("\nPleasure to meet you.\n")
//
//	answers, err := tw.Do(ctx)
//
// [Sequencer.Write] expands into interleaved pause and emit operations so the
// text appears one character at a time over the given duration; with a zero
// duration it emits the text at once. [Sequencer.Input] writes an optional
// paced prompt and then reads one line, which [Sequencer.Do] collects and
// returns in queue order.
//
// Durations are sticky: [Over] sets the pacing interval for its call and
// becomes the default for subsequent calls that omit it.
//
// # Execution and Cancellation
//
// [Sequencer.Do] drains the queue one operation at a time; operation N+1
// never starts before operation N settles. The context passed to Do is the
// external abort signal: while an operation is in flight, its cancel
// callback is the only listener attached to the signal. Cancellation is an
// expected outcome, not a failure — Do stops draining and returns normally
// with the inputs collected so far. Only genuine I/O failures from the sink
// or source are returned as errors, and even then the sequencer is left
// idle with an empty queue, ready to be rebuilt.
//
// A pending line read is the one thing cancellation cannot interrupt: the
// read settles on its own, and the abort takes effect on the next operation.
//
// # The Immediate-Mode Variant
//
// [Writer] is the second variant of the delayed writer: a plain [io.Writer]
// that paces each rune as bytes flow through, for write paths that do not
// need queueing or input collection.
package typewriter
