// SPDX-License-Identifier: Apache-2.0

package typewriter

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSloggerDefault(t *testing.T) {
	t.Parallel()
	assert.Same(t, slog.Default(), Slogger(context.Background()))
}

func TestWithSloggerRoundTrip(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithSlogger(context.Background(), logger)
	assert.Same(t, logger, Slogger(ctx))
}

func TestDoLogsProgress(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New(&recordingSink{}, WithSource(nil))
	s.Write("hi")
	_, err := s.Do(WithSlogger(context.Background(), logger))

	assert.NoError(err)
	assert.Contains(buf.String(), "draining queue")
	assert.Contains(buf.String(), "queue drained")
}
