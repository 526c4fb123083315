package dict

import (
	"embed"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

//go:embed data/*.txt
var lexicons embed.FS

// Names of the bundled script lexicons. Phrase tables come before
// character tables in a Set so that phrase matches take priority at equal
// key lengths.
const (
	STCharacters  = "STCharacters"
	STPhrases     = "STPhrases"
	TSCharacters  = "TSCharacters"
	TSPhrases     = "TSPhrases"
	TWVariants    = "TWVariants"
	TWVariantsRev = "TWVariantsRev"
	TWPhrases     = "TWPhrases"
	TWPhrasesRev  = "TWPhrasesRev"
	HKVariants    = "HKVariants"
	HKVariantsRev = "HKVariantsRev"
	JPVariants    = "JPVariants"
	JPVariantsRev = "JPVariantsRev"
)

// Names of the bundled punctuation lexicons.
const (
	STPunctuation = "STPunctuation"
	TSPunctuation = "TSPunctuation"
)

var scriptLexicons = []string{
	STCharacters, STPhrases, TSCharacters, TSPhrases,
	TWVariants, TWVariantsRev, TWPhrases, TWPhrasesRev,
	HKVariants, HKVariantsRev, JPVariants, JPVariantsRev,
}

var punctLexicons = []string{STPunctuation, TSPunctuation}

// Registry holds all bundled lexicons, loaded once and immutable
// afterwards. Table iteration order equals declaration order, which is
// also lookup priority order.
type Registry struct {
	tables *linkedhashmap.Map // lexicon name -> *Table
	punct  map[string]*PunctTable
}

// Load reads every bundled lexicon into a Registry. A missing or
// malformed lexicon aborts the load; the engine surfaces that as its
// construction error.
func Load() (*Registry, error) {
	reg := &Registry{
		tables: linkedhashmap.New(),
		punct:  make(map[string]*PunctTable, len(punctLexicons)),
	}
	for _, name := range scriptLexicons {
		f, err := lexicons.Open("data/" + name + ".txt")
		if err != nil {
			return nil, fmt.Errorf("lexicon %s: %w", name, err)
		}
		t, err := Parse(name, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		reg.tables.Put(name, t)
	}
	for _, name := range punctLexicons {
		f, err := lexicons.Open("data/" + name + ".txt")
		if err != nil {
			return nil, fmt.Errorf("lexicon %s: %w", name, err)
		}
		p, err := ParsePunct(name, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		reg.punct[name] = p
	}
	CT().Infof("loaded %d script lexicons, %d punctuation lexicons", reg.tables.Size(), len(reg.punct))
	return reg, nil
}

// Table returns a loaded script table by lexicon name.
func (reg *Registry) Table(name string) (*Table, bool) {
	v, ok := reg.tables.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Table), true
}

// Punctuation returns a loaded punctuation table by lexicon name.
func (reg *Registry) Punctuation(name string) (*PunctTable, bool) {
	p, ok := reg.punct[name]
	return p, ok
}

// Set builds a priority-ordered Set from lexicon names. Unknown names are
// an error; they indicate a broken pipeline definition, not bad user
// input.
func (reg *Registry) Set(names ...string) (*Set, error) {
	tables := make([]*Table, 0, len(names))
	for _, name := range names {
		t, ok := reg.Table(name)
		if !ok {
			return nil, fmt.Errorf("unknown lexicon %q", name)
		}
		tables = append(tables, t)
	}
	return NewSet(tables...), nil
}

// Names lists the loaded script lexicons in priority order.
func (reg *Registry) Names() []string {
	keys := reg.tables.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}
