// SPDX-License-Identifier: Apache-2.0

package typewriter

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding"
)

// A Source produces one line of decoded text per request, blocking until a
// line terminator or end of input arrives.
//
// Implementations do not need to support interruption: the engine never
// forcibly aborts a pending read.
type Source interface {
	// ReadLine returns the next line without its terminator. It returns
	// io.EOF when the input is exhausted.
	ReadLine() (string, error)
}

// scanSource adapts an io.Reader into a Source using bufio line splitting.
type scanSource struct {
	scanner *bufio.Scanner
}

// ScanSource returns a [Source] reading newline-terminated lines from r,
// with the terminator stripped. Once r is exhausted, ReadLine returns
// [io.EOF].
func ScanSource(r io.Reader) Source {
	return &scanSource{scanner: bufio.NewScanner(r)}
}

func (s *scanSource) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// DecodeSource returns a [Source] that decodes r from enc to UTF-8 before
// splitting it into lines. Use it when the host's input is not UTF-8, e.g.
// a legacy terminal:
//
//	src := typewriter.DecodeSource(conn, charmap.ISO8859_1)
//	tw := typewriter.New(conn, typewriter.WithSource(src))
func DecodeSource(r io.Reader, enc encoding.Encoding) Source {
	return ScanSource(enc.NewDecoder().Reader(r))
}
