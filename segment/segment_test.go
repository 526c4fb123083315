package segment_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/laisuk/zhoconv/dict"
	"github.com/laisuk/zhoconv/segment"
)

func mustTable(t *testing.T, lexicon string) *dict.Table {
	t.Helper()
	table, err := dict.Parse("test", strings.NewReader(lexicon))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return table
}

func ExampleSegmenter() {
	table, _ := dict.Parse("example", strings.NewReader("头发	頭髮\n发	發\n"))
	segmenter := segment.NewSegmenter(dict.NewSet(table))
	segmenter.Init(strings.NewReader("头发长"))
	for segmenter.Next() {
		fmt.Printf("'%s'\n", segmenter.Text())
	}
	// Output: '頭髮'
	// '长'
}

func TestLongestMatchWins(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, "头发	頭髮\n发	發\n头	頭\n")
	segmenter := segment.NewSegmenter(dict.NewSet(table))
	segmenter.Init(strings.NewReader("头发"))
	if !segmenter.Next() {
		t.Fatalf("expected a first span")
	}
	if segmenter.Text() != "頭髮" {
		t.Errorf("expected phrase match 頭髮, have %q", segmenter.Text())
	}
	if !segmenter.Matched() {
		t.Errorf("expected span to be a dictionary match")
	}
	if segmenter.SourceLen() != 2 {
		t.Errorf("expected source length 2, have %d", segmenter.SourceLen())
	}
	if segmenter.Next() {
		t.Errorf("expected input to be exhausted, have %q", segmenter.Text())
	}
	if segmenter.Err() != nil {
		t.Errorf("expected no error, have %v", segmenter.Err())
	}
}

func TestUnmatchedRunePassthrough(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, "发	發\n")
	segmenter := segment.NewSegmenter(dict.NewSet(table))
	segmenter.Init(strings.NewReader("a发z"))
	var spans []string
	for segmenter.Next() {
		spans = append(spans, segmenter.Text())
	}
	if len(spans) != 3 || spans[0] != "a" || spans[1] != "發" || spans[2] != "z" {
		t.Errorf("expected [a 發 z], have %v", spans)
	}
}

func TestReplacementMayChangeLength(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, "出租车	計程車司機\n")
	segmenter := segment.NewSegmenter(dict.NewSet(table))
	segmenter.Init(strings.NewReader("出租车"))
	if !segmenter.Next() {
		t.Fatalf("expected a span")
	}
	if segmenter.Text() != "計程車司機" {
		t.Errorf("have %q", segmenter.Text())
	}
	if segmenter.SourceLen() != 3 {
		t.Errorf("source length must count source runes, have %d", segmenter.SourceLen())
	}
}

func TestNotInitialized(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, "发	發\n")
	segmenter := segment.NewSegmenter(dict.NewSet(table))
	if segmenter.Next() {
		t.Errorf("expected Next on uninitialized segmenter to fail")
	}
	if segmenter.Err() != segment.ErrNotInitialized {
		t.Errorf("expected ErrNotInitialized, have %v", segmenter.Err())
	}
}

func TestReinit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, "发	發\n")
	segmenter := segment.NewSegmenter(dict.NewSet(table))
	segmenter.Init(strings.NewReader("发"))
	for segmenter.Next() {
	}
	segmenter.Init(strings.NewReader("发发"))
	n := 0
	for segmenter.Next() {
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 spans after re-init, have %d", n)
	}
}

func TestApply(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := mustTable(t, "头发	頭髮\n发	發\n")
	set := dict.NewSet(table)
	if out := segment.Apply(set, "头发发"); out != "頭髮發" {
		t.Errorf("expected 頭髮發, have %q", out)
	}
	if out := segment.Apply(set, ""); out != "" {
		t.Errorf("expected empty output for empty input, have %q", out)
	}
}
