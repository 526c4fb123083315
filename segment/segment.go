/*
Package segment implements forward maximum matching segmentation (FMMSEG)
against dictionary sets.

BSD License

Copyright (c) the zhoconv authors

All rights reserved.
License information is available in the LICENSE file.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner for walking
Unicode text. Successive calls to a segmenter's Next() method step
through the text span by span: each span is either the replacement of the
longest dictionary match at the current position, or a single unmatched
rune passed through unchanged.

  set := … // a dict.Set
  segmenter := segment.NewSegmenter(set)
  segmenter.Init(strings.NewReader("简体中文"))
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }

How it works

The segmenter keeps a sliding window of runes, as long as the longest key
in the dictionary set. At each step it asks the set for the longest match
at the window head; the matched source length is dropped from the window
and the replacement is emitted. Matching is greedy and strictly forward:
there is no backtracking, and no attempt at a globally optimal
segmentation. That is the contract of the FMMSEG algorithm family, which
keeps the scan linear and deterministic.
*/
package segment

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/laisuk/zhoconv/dict"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNotInitialized is returned if a segmenter's Next-function is called
// without first setting an input source.
var ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")

const startBufSize = 64 // size of initial allocation for the span buffer

// A Segmenter receives a sequence of code-points from an io.RuneReader
// and splits it into spans by maximal forward matching against a
// dictionary set.
//
// Segmenters are not safe for concurrent use; every call site owns its
// own cursor state. The dictionary set behind them is immutable and may
// be shared freely.
type Segmenter struct {
	set        *dict.Set
	reader     io.RuneReader
	window     []rune // pending runes, at most the set's max key length
	buffer     *bytes.Buffer
	activeSpan []byte
	srcLen     int // source length, in runes, of the most recent span
	matched    bool
	atEOF      bool
	err        error
}

// NewSegmenter creates a new Segmenter matching against the given
// dictionary set.
//
// Before using newly created segmenters, clients will have to call
// Init(...) on them, i.e. initialize them for a rune reader.
func NewSegmenter(set *dict.Set) *Segmenter {
	return &Segmenter{set: set}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
		s.window = make([]rune, 0, s.lookahead())
	} else {
		s.buffer.Reset()
		s.window = s.window[:0]
	}
	s.activeSpan = nil
	s.srcLen = 0
	s.matched = false
	s.atEOF = false
	s.err = nil
}

// lookahead is the window size: the longest key of the set, never less
// than a single rune.
func (s *Segmenter) lookahead() int {
	if s.set == nil || s.set.MaxKeyLen() < 1 {
		return 1
	}
	return s.set.MaxKeyLen()
}

// Next advances the Segmenter to the next span, which will then be
// available through the Bytes() or Text() method. It returns false when
// the segmenting stops, either by reaching the end of the input or an
// error. After Next() returns false, the Err() method will return any
// error that occurred during scanning, except for io.EOF. For the latter
// case Err() will return nil.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		s.activeSpan = nil
		return false
	}
	s.fillWindow()
	if len(s.window) == 0 {
		s.activeSpan = nil
		return false
	}
	s.buffer.Reset()
	if s.set != nil {
		if length, repl, ok := s.set.Lookup(s.window, 0); ok {
			s.buffer.WriteString(repl)
			s.advance(length)
			s.matched = true
			s.activeSpan = s.buffer.Bytes()
			return true
		}
	}
	s.buffer.WriteRune(s.window[0])
	s.advance(1)
	s.matched = false
	s.activeSpan = s.buffer.Bytes()
	return true
}

// fillWindow tops the lookahead window up to the longest key length.
func (s *Segmenter) fillWindow() {
	max := s.lookahead()
	for !s.atEOF && len(s.window) < max {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			s.atEOF = true
			break
		}
		if err != nil {
			s.setErr(err)
			s.atEOF = true
			break
		}
		s.window = append(s.window, r)
	}
}

// advance drops n consumed source runes from the window head.
func (s *Segmenter) advance(n int) {
	s.srcLen = n
	copy(s.window, s.window[n:])
	s.window = s.window[:len(s.window)-n]
}

// Bytes returns the most recent span generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). No allocation is performed.
func (s *Segmenter) Bytes() []byte {
	return s.activeSpan
}

// Text returns the most recent span generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSpan)
}

// SourceLen returns the source length, in runes, consumed by the most
// recent span. For a dictionary match this is the key length, which may
// differ from the replacement length.
func (s *Segmenter) SourceLen() int {
	return s.srcLen
}

// Matched reports whether the most recent span came from a dictionary
// match rather than single-rune passthrough.
func (s *Segmenter) Matched() bool {
	return s.matched
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// setErr records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// Apply runs one full conversion pass over text and returns the
// assembled output. Empty input returns empty output without touching
// the dictionary set.
func Apply(set *dict.Set, text string) string {
	if text == "" {
		return ""
	}
	s := NewSegmenter(set)
	s.Init(strings.NewReader(text))
	var sb strings.Builder
	sb.Grow(len(text))
	for s.Next() {
		sb.Write(s.Bytes())
	}
	return sb.String()
}
