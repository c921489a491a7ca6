// SPDX-License-Identifier: Apache-2.0

package typewriter

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
)

// ==== Test Helpers: Error Variables ====

var errSink = errors.New("sink failure")
var errSource = errors.New("source failure")

// ==== Test Helpers: recordingSink ====

// recordingSink captures every emitted fragment. If failAt is nonzero, the
// failAt-th write (1-based) fails with errSink.
type recordingSink struct {
	mu     sync.Mutex
	writes []string
	failAt int
	count  int
}

func (r *recordingSink) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	if r.failAt > 0 && r.count == r.failAt {
		return 0, errSink
	}
	r.writes = append(r.writes, string(p))
	return len(p), nil
}

// Writes returns a copy of the captured fragments, in emission order.
func (r *recordingSink) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.writes...)
}

// Output returns the captured fragments joined together.
func (r *recordingSink) Output() string {
	return strings.Join(r.Writes(), "")
}

// ==== Test Helpers: Sources ====

// stubSource serves canned lines. Once exhausted it returns failWith, or
// io.EOF when failWith is nil.
type stubSource struct {
	lines    []string
	failWith error
}

func (s *stubSource) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		if s.failWith != nil {
			return "", s.failWith
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// chanSource blocks each read until a line is sent on ch, letting tests
// control exactly when a pending read settles.
type chanSource struct {
	ch chan string
}

func (s *chanSource) ReadLine() (string, error) {
	return <-s.ch, nil
}

// ==== Test Helpers: Synchronization ====

// waitFor polls cond until it holds, failing the test after two seconds.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
