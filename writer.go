// SPDX-License-Identifier: Apache-2.0

package typewriter

import (
	"context"
	"io"
	"time"
	"unicode/utf8"
)

// A Writer is the immediate-mode counterpart of [Sequencer]: an [io.Writer]
// that pauses before each rune it forwards, with no queue and no builder.
//
// It is handy when pacing is wanted on an existing write path:
//
//	fmt.Fprintln(typewriter.NewWriter(os.Stdout, 30*time.Millisecond), "hello")
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w       io.Writer
	perRune time.Duration
	ctx     context.Context
}

// A WriterOption configures a [Writer].
type WriterOption func(*Writer)

// WithContext makes the writer's pacing cancellable.
//
// A write interrupted by the context stops between runes and returns the
// context's error together with the count of bytes already forwarded. The
// underlying write of a rune is never aborted mid-flight.
func WithContext(ctx context.Context) WriterOption {
	return func(w *Writer) {
		w.ctx = ctx
	}
}

// NewWriter returns a [Writer] forwarding to w, pausing perRune before each
// rune. A nonpositive perRune forwards writes unchanged.
func NewWriter(w io.Writer, perRune time.Duration, opts ...WriterOption) *Writer {
	tw := &Writer{
		w:       w,
		perRune: perRune,
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(tw)
	}
	return tw
}

// Write implements [io.Writer], forwarding p rune by rune. Bytes that do not
// form valid UTF-8 are forwarded one at a time.
func (tw *Writer) Write(p []byte) (int, error) {
	if tw.perRune <= 0 {
		return tw.w.Write(p)
	}
	written := 0
	for len(p) > 0 {
		_, size := utf8.DecodeRune(p)
		if err := tw.pause(); err != nil {
			return written, err
		}
		n, err := tw.w.Write(p[:size])
		written += n
		if err != nil {
			return written, err
		}
		p = p[size:]
	}
	return written, nil
}

// WriteString implements [io.StringWriter].
func (tw *Writer) WriteString(s string) (int, error) {
	return tw.Write([]byte(s))
}

// pause sleeps for the per-rune interval, honoring cancellation.
func (tw *Writer) pause() error {
	timer := time.NewTimer(tw.perRune)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-tw.ctx.Done():
		return tw.ctx.Err()
	}
}
