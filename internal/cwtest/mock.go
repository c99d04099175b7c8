// SPDX-License-Identifier: EPL-2.0

// Package cwtest provides test helpers shared by the cwgen packages.
package cwtest

import (
	"io"

	"github.com/rfwave/cwgen/morse"
)

// ScriptReader replays a fixed element script. It implements
// morse.ElementReader, letting synthesis tests run against hand-authored
// timing instead of keyed text.
type ScriptReader struct {
	elems []morse.Element
	pos   int
}

// NewScriptReader returns a reader over the given elements.
func NewScriptReader(elems ...morse.Element) *ScriptReader {
	return &ScriptReader{elems: elems}
}

// Reset rewinds the script for re-reading.
func (s *ScriptReader) Reset() { s.pos = 0 }

func (s *ScriptReader) ReadElements(dst []morse.Element) (int, error) {
	if s.pos >= len(s.elems) {
		return 0, io.EOF
	}

	n := copy(dst, s.elems[s.pos:])
	s.pos += n

	if s.pos >= len(s.elems) {
		return n, io.EOF
	}

	return n, nil
}

// FailingReader yields the configured elements and then fails with the
// given error, for exercising mid-stream error propagation.
type FailingReader struct {
	script *ScriptReader
	err    error
}

// NewFailingReader returns a reader that errors with err after elems.
func NewFailingReader(err error, elems ...morse.Element) *FailingReader {
	return &FailingReader{script: NewScriptReader(elems...), err: err}
}

func (f *FailingReader) ReadElements(dst []morse.Element) (int, error) {
	n, err := f.script.ReadElements(dst)
	if err == io.EOF {
		return n, f.err
	}

	return n, err
}
