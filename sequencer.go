// SPDX-License-Identifier: Apache-2.0

package typewriter

import (
	"io"
	"os"
	"sync/atomic"
	"time"
)

// A Sequencer queues timed operations and executes them strictly in order.
//
// It is built fluently: [Sequencer.Wait] queues a pause, [Sequencer.Write]
// queues paced character-by-character emission, and [Sequencer.Input] queues
// an optional prompt followed by one line read. [Sequencer.Do] then drains
// the queue one operation at a time, cancellable through a context.
//
// A sequencer cycles between idle and executing. The builder methods mutate
// the queue while idle and panic with [ErrExecuting] during an active Do.
// Do always returns the sequencer to idle with an empty queue, so the same
// instance can be rebuilt and reused.
//
// A Sequencer is not safe for concurrent use.
type Sequencer struct {
	sink     io.Writer
	source   Source
	queue    []op
	interval time.Duration
	inputs   []string

	executing atomic.Bool
}

// An Option configures a [Sequencer] at construction time.
type Option func(*Sequencer)

// WithSource sets the line-input source consumed by [Sequencer.Input]
// operations. The default reads newline-terminated lines from standard
// input.
//
// Passing nil disables input: queued input operations then fail with
// [ErrNoSource].
func WithSource(src Source) Option {
	return func(s *Sequencer) {
		s.source = src
	}
}

// WithInterval sets the initial default pacing interval, used by builder
// calls that do not supply one via [Over]. The default is zero, under which
// [Sequencer.Write] emits text in a single unpaced operation.
func WithInterval(d time.Duration) Option {
	return func(s *Sequencer) {
		s.interval = d
	}
}

// New creates an idle sequencer that emits to w.
func New(w io.Writer, opts ...Option) *Sequencer {
	s := &Sequencer{
		sink:   w,
		source: ScanSource(os.Stdin),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// paceConfig resolves the interval of a single builder call.
type paceConfig struct {
	interval time.Duration
	explicit bool
}

// A PaceOption adjusts the timing of a single builder call.
type PaceOption func(*paceConfig)

// Over sets the duration a builder call is paced over.
//
// The supplied duration also becomes the sequencer's default interval, so
// subsequent builder calls that omit Over reuse it.
//
// Example:
//
//	tw.Write("Hello", typewriter.Over(time.Second)). // paced over 1s
//	    Wait().                                      // pauses 1s
//	    Write("world")                               // paced over 1s
func Over(d time.Duration) PaceOption {
	return func(c *paceConfig) {
		c.interval = d
		c.explicit = true
	}
}

// pace resolves the effective interval for a builder call, updating the
// sticky default when an explicit one was supplied.
func (s *Sequencer) pace(opts []PaceOption) time.Duration {
	cfg := paceConfig{interval: s.interval}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.explicit {
		s.interval = cfg.interval
	}
	return cfg.interval
}

// guard rejects queue mutation while the sequencer is executing.
func (s *Sequencer) guard() {
	if s.executing.Load() {
		panic(ErrExecuting)
	}
}

// Wait queues a pure pause for the interval.
//
// Wait panics with [ErrExecuting] if called during an active [Sequencer.Do].
func (s *Sequencer) Wait(opts ...PaceOption) *Sequencer {
	s.guard()
	s.queue = append(s.queue, waitOp(s.pace(opts)))
	return s
}

// Write queues character-by-character emission of text paced over the
// interval: every rune is preceded by a pause of interval divided by the
// rune count, so the whole text takes roughly the interval to appear.
//
// With a zero interval the pacing is skipped and the whole text is queued
// as one emission. Empty text with a nonzero interval queues nothing (the
// default interval still updates).
//
// Write panics with [ErrExecuting] if called during an active [Sequencer.Do].
func (s *Sequencer) Write(text string, opts ...PaceOption) *Sequencer {
	s.guard()
	s.write(text, s.pace(opts))
	return s
}

// write appends the pacing expansion of text to the queue.
func (s *Sequencer) write(text string, interval time.Duration) {
	if interval == 0 {
		s.queue = append(s.queue, emitOp(s.sink, text))
		return
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}
	per := interval / time.Duration(len(runes))
	for _, r := range runes {
		s.queue = append(s.queue, waitOp(per), emitOp(s.sink, string(r)))
	}
}

// Input queues a paced emission of prompt (omitted when empty, expanded
// exactly like [Sequencer.Write] otherwise) followed by one line read from
// the source. The line is not written anywhere; [Sequencer.Do] collects it
// and returns it in queue order relative to other Input calls.
//
// Input panics with [ErrExecuting] if called during an active [Sequencer.Do].
func (s *Sequencer) Input(prompt string, opts ...PaceOption) *Sequencer {
	s.guard()
	interval := s.pace(opts)
	if prompt != "" {
		s.write(prompt, interval)
	}
	s.queue = append(s.queue, requestLineOp(s.source))
	return s
}

// Len reports the number of queued operations.
func (s *Sequencer) Len() int {
	return len(s.queue)
}
