package dict_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/laisuk/zhoconv/dict"
)

const tinyLexicon = `# comment line
头发	頭髮
发	發
头	頭
`

func TestParse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table, err := dict.Parse("tiny", strings.NewReader(tinyLexicon))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("expected 3 entries, have %d", table.Len())
	}
	if table.MaxKeyLen() != 2 {
		t.Errorf("expected max key length 2, have %d", table.MaxKeyLen())
	}
	if repl, ok := table.Match("头发"); !ok || repl != "頭髮" {
		t.Errorf("expected 头发 -> 頭髮, have %q (%v)", repl, ok)
	}
	if _, ok := table.Match("没有"); ok {
		t.Errorf("did not expect a match for 没有")
	}
}

func TestParseFirstCandidateWins(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table, err := dict.Parse("multi", strings.NewReader("干	乾 幹 干\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if repl, _ := table.Match("干"); repl != "乾" {
		t.Errorf("expected first candidate 乾, have %q", repl)
	}
}

func TestParseMalformed(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := dict.Parse("broken", strings.NewReader("好	好\nno tab here\n"))
	if err == nil {
		t.Fatalf("expected parse of malformed lexicon to fail")
	}
	if !errors.Is(err, dict.ErrMalformed) {
		t.Errorf("expected ErrMalformed, have %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error to name line 2, have %q", err.Error())
	}
}

func TestParseInvalidEncoding(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := dict.Parse("binary", strings.NewReader("\xff\xfe\tx\n"))
	if !errors.Is(err, dict.ErrEncoding) {
		t.Errorf("expected ErrEncoding, have %v", err)
	}
}

func TestSetLookupLongestMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table, err := dict.Parse("tiny", strings.NewReader(tinyLexicon))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	set := dict.NewSet(table)
	text := []rune("头发长")
	length, repl, ok := set.Lookup(text, 0)
	if !ok || length != 2 || repl != "頭髮" {
		t.Errorf("expected 2-rune match 頭髮, have length=%d repl=%q ok=%v", length, repl, ok)
	}
	length, repl, ok = set.Lookup(text, 1)
	if !ok || length != 1 || repl != "發" {
		t.Errorf("expected 1-rune match 發, have length=%d repl=%q ok=%v", length, repl, ok)
	}
	if _, _, ok = set.Lookup(text, 2); ok {
		t.Errorf("did not expect a match at 长")
	}
}

func TestSetPriorityBreaksTies(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	first, err := dict.Parse("first", strings.NewReader("发	A\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	second, err := dict.Parse("second", strings.NewReader("发	B\n发丝	BB\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	set := dict.NewSet(first, second)
	_, repl, _ := set.Lookup([]rune("发"), 0)
	if repl != "A" {
		t.Errorf("expected earlier table to win the tie, have %q", repl)
	}
	// a longer key in a later table still wins over a shorter one
	length, repl, _ := set.Lookup([]rune("发丝"), 0)
	if length != 2 || repl != "BB" {
		t.Errorf("expected longest match BB, have length=%d repl=%q", length, repl)
	}
}

func TestSetBoundary(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table, err := dict.Parse("tiny", strings.NewReader(tinyLexicon))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	set := dict.NewSet(table)
	if set.Boundary('头') {
		t.Errorf("头 occurs in a key, should not be a boundary")
	}
	if !set.Boundary('。') {
		t.Errorf("。 occurs in no key, should be a boundary")
	}
}

func TestRegistryLoad(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg, err := dict.Load()
	if err != nil {
		t.Fatalf("loading bundled lexicons failed: %v", err)
	}
	if len(reg.Names()) != 12 {
		t.Errorf("expected 12 script lexicons, have %d", len(reg.Names()))
	}
	st, ok := reg.Table(dict.STCharacters)
	if !ok || st.Len() == 0 {
		t.Fatalf("STCharacters missing or empty")
	}
	if repl, _ := st.Match("发"); repl != "發" {
		t.Errorf("expected 发 -> 發, have %q", repl)
	}
	if _, err := reg.Set("NoSuchLexicon"); err == nil {
		t.Errorf("expected Set with unknown lexicon name to fail")
	}
	set, err := reg.Set(dict.STPhrases, dict.STCharacters)
	if err != nil {
		t.Fatalf("building set failed: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("expected set of 2 tables, have %d", set.Len())
	}
}

func TestPunctTable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg, err := dict.Load()
	if err != nil {
		t.Fatalf("loading bundled lexicons failed: %v", err)
	}
	punct, ok := reg.Punctuation(dict.STPunctuation)
	if !ok {
		t.Fatalf("STPunctuation missing")
	}
	if out := punct.Apply("他说：“你好”"); out != "他说：「你好」" {
		t.Errorf("expected corner brackets, have %q", out)
	}
	if out := punct.Apply("no punctuation"); out != "no punctuation" {
		t.Errorf("expected passthrough, have %q", out)
	}
}

func TestParsePunctRejectsPhrases(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := dict.ParsePunct("bad", strings.NewReader("“”	「\n"))
	if !errors.Is(err, dict.ErrMalformed) {
		t.Errorf("expected ErrMalformed for multi-rune punctuation key, have %v", err)
	}
}
