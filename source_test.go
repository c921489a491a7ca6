// SPDX-License-Identifier: Apache-2.0

package typewriter

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func TestScanSource(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	src := ScanSource(strings.NewReader("Ada\nLovelace\n"))

	line, err := src.ReadLine()
	assert.NoError(err)
	assert.Equal("Ada", line)

	line, err = src.ReadLine()
	assert.NoError(err)
	assert.Equal("Lovelace", line)

	_, err = src.ReadLine()
	assert.ErrorIs(err, io.EOF)
}

func TestScanSourceNoTrailingNewline(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	src := ScanSource(strings.NewReader("Ada"))

	line, err := src.ReadLine()
	assert.NoError(err)
	assert.Equal("Ada", line)

	_, err = src.ReadLine()
	assert.ErrorIs(err, io.EOF)
}

func TestScanSourceReaderError(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	src := ScanSource(iotest.ErrReader(errSource))

	_, err := src.ReadLine()
	assert.ErrorIs(err, errSource)
}

func TestDecodeSource(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// "café" in Latin-1, é = 0xE9.
	src := DecodeSource(strings.NewReader("caf\xe9\ncr\xe8me\n"), charmap.ISO8859_1)

	line, err := src.ReadLine()
	assert.NoError(err)
	assert.Equal("café", line)

	line, err = src.ReadLine()
	assert.NoError(err)
	assert.Equal("crème", line)

	_, err = src.ReadLine()
	assert.ErrorIs(err, io.EOF)
}
