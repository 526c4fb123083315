/*
Package dict holds the phrase dictionaries driving Chinese script
conversion.

A Table is an immutable exact-match mapping from a source phrase to a
target phrase, loaded once from an OpenCC-style text lexicon. A Set is a
priority-ordered group of tables consulted together during one conversion
pass: at any text position the longest key found in any table wins, and
table order only breaks ties between keys of equal length.

Tables are built at load time and never mutated afterwards, so they may be
read concurrently from any number of goroutines without synchronization.

BSD License

Copyright (c) the zhoconv authors

All rights reserved.
License information is available in the LICENSE file.
*/
package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Lexicon load failures wrap one of these sentinel errors.
var (
	ErrMalformed = errors.New("malformed lexicon entry")
	ErrEncoding  = errors.New("lexicon is not valid UTF-8")
)

// Table is an immutable phrase-to-phrase mapping.
//
// Keys and values are UTF-8 phrases of one or more runes; source and
// replacement may differ in rune count. Zero value is not usable; tables
// are produced by Parse.
type Table struct {
	name      string
	entries   map[string]string
	maxKeyLen int // longest key, in runes
	keyRunes  map[rune]struct{}
}

// Name returns the lexicon name the table was loaded under.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// MaxKeyLen returns the length, in runes, of the longest key.
func (t *Table) MaxKeyLen() int {
	return t.maxKeyLen
}

// Match looks up an exact key and returns its replacement.
func (t *Table) Match(key string) (string, bool) {
	repl, ok := t.entries[key]
	return repl, ok
}

// Parse reads an OpenCC-style text lexicon into a Table.
//
// Each line holds a key and one or more space-separated replacement
// candidates, separated by a tab; the first candidate wins. Blank lines
// and lines starting with '#' are skipped. Malformed lines and invalid
// UTF-8 abort the load with a wrapped ErrMalformed or ErrEncoding naming
// the lexicon and line number.
func Parse(name string, r io.Reader) (*Table, error) {
	t := &Table{
		name:     name,
		entries:  make(map[string]string),
		keyRunes: make(map[rune]struct{}),
	}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("lexicon %s line %d: %w", name, lineno, ErrEncoding)
		}
		key, value, err := splitEntry(line)
		if err != nil {
			return nil, fmt.Errorf("lexicon %s line %d: %w", name, lineno, err)
		}
		t.entries[key] = value
		if n := utf8.RuneCountInString(key); n > t.maxKeyLen {
			t.maxKeyLen = n
		}
		for _, c := range key {
			t.keyRunes[c] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", name, err)
	}
	CT().Debugf("lexicon %s: %d entries, max key length %d", name, len(t.entries), t.maxKeyLen)
	return t, nil
}

func splitEntry(line string) (string, string, error) {
	fields := strings.SplitN(line, "\t", 2)
	if len(fields) != 2 {
		return "", "", ErrMalformed
	}
	key := fields[0]
	value := fields[1]
	// first of possibly several space-separated candidates
	if i := strings.IndexByte(value, ' '); i >= 0 {
		value = value[:i]
	}
	if key == "" || value == "" {
		return "", "", ErrMalformed
	}
	return key, value, nil
}

// Set is a priority-ordered list of tables consulted together for one
// conversion pass.
type Set struct {
	tables    []*Table
	maxKeyLen int
	keyRunes  map[rune]struct{}
}

// NewSet groups tables into a Set. Earlier tables take priority when two
// tables hold keys of equal length.
func NewSet(tables ...*Table) *Set {
	s := &Set{
		tables:   tables,
		keyRunes: make(map[rune]struct{}),
	}
	for _, t := range tables {
		if t.maxKeyLen > s.maxKeyLen {
			s.maxKeyLen = t.maxKeyLen
		}
		for r := range t.keyRunes {
			s.keyRunes[r] = struct{}{}
		}
	}
	return s
}

// MaxKeyLen returns the length, in runes, of the longest key in any table.
func (s *Set) MaxKeyLen() int {
	return s.maxKeyLen
}

// Len returns the number of tables.
func (s *Set) Len() int {
	return len(s.tables)
}

// Lookup attempts a match at a single starting offset into text.
//
// It returns the longest key length (in runes) matching any table, with
// the replacement of the highest-priority table holding a key of that
// length. Longer matches always win over shorter ones regardless of table
// order. ok is false when no table has any match at start.
func (s *Set) Lookup(text []rune, start int) (length int, replacement string, ok bool) {
	limit := len(text) - start
	if limit > s.maxKeyLen {
		limit = s.maxKeyLen
	}
	for l := limit; l >= 1; l-- {
		key := string(text[start : start+l])
		for _, t := range s.tables {
			if t.maxKeyLen < l {
				continue
			}
			if repl, found := t.entries[key]; found {
				return l, repl, true
			}
		}
	}
	return 0, "", false
}

// Boundary reports whether r occurs in no key of any table. A text
// position directly after such a rune can never be covered by a
// dictionary match, which makes it a safe split point for chunked
// processing.
func (s *Set) Boundary(r rune) bool {
	_, used := s.keyRunes[r]
	return !used
}
