package dict

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// PunctTable is an immutable punctuation glyph substitution table,
// independent of the script dictionaries. It maps single runes only and is
// applied in one pass over already-converted text.
type PunctTable struct {
	name string
	repl map[rune]rune
}

// ParsePunct reads a punctuation lexicon. The format is the same as for
// Parse, but keys and replacements must be exactly one rune each.
func ParsePunct(name string, r io.Reader) (*PunctTable, error) {
	t, err := Parse(name, r)
	if err != nil {
		return nil, err
	}
	p := &PunctTable{
		name: name,
		repl: make(map[rune]rune, len(t.entries)),
	}
	for key, value := range t.entries {
		if utf8.RuneCountInString(key) != 1 || utf8.RuneCountInString(value) != 1 {
			return nil, fmt.Errorf("lexicon %s: entry %q->%q: %w", name, key, value, ErrMalformed)
		}
		k, _ := utf8.DecodeRuneInString(key)
		v, _ := utf8.DecodeRuneInString(value)
		p.repl[k] = v
	}
	return p, nil
}

// Name returns the lexicon name the table was loaded under.
func (p *PunctTable) Name() string {
	return p.name
}

// Len returns the number of entries.
func (p *PunctTable) Len() int {
	return len(p.repl)
}

// Apply substitutes punctuation glyphs in a single pass over text.
// Runes without an entry pass through unchanged.
func (p *PunctTable) Apply(text string) string {
	if text == "" {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if v, ok := p.repl[r]; ok {
			sb.WriteRune(v)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
