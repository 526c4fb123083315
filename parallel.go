package zhoconv

import (
	"runtime"
	"strings"
	"sync"

	"github.com/laisuk/zhoconv/dict"
)

// Parallel-mode tuning. Inputs below parallelMinRunes are not worth the
// fan-out overhead; chunkTargetRunes is the size a chunk aims for before
// the splitter starts looking for a safe boundary.
const (
	parallelMinRunes = 10000
	chunkTargetRunes = 4096
)

// convertParallel partitions text into independent chunks, runs the full
// pipeline over each chunk on its own worker goroutine and concatenates
// the results in original chunk order. Output is byte-identical to
// convertSequential: chunks are cut only at positions no dictionary
// entry of any stage can span.
func convertParallel(p *pipeline, text string, punctuation bool) string {
	runes := []rune(text)
	if len(runes) < parallelMinRunes {
		return convertSequential(p, text, punctuation)
	}
	chunks := splitChunks(runes, p.stages)
	if len(chunks) < 2 {
		return convertSequential(p, text, punctuation)
	}
	results := make([]string, len(chunks))
	workers := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			workers <- struct{}{}
			results[i] = convertSequential(p, chunk, punctuation)
			<-workers
		}(i, chunk)
	}
	wg.Wait()
	return strings.Join(results, "")
}

// splitChunks cuts runes into chunks of roughly chunkTargetRunes. A cut
// directly after rune r is safe when r occurs in no dictionary key of
// any stage: no match can then cover both sides of the cut, so greedy
// segmentation of the chunks reproduces the sequential segmentation
// span for span. When no safe boundary exists the remainder stays one
// chunk; correctness always wins over balance.
func splitChunks(runes []rune, stages []*dict.Set) []string {
	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + chunkTargetRunes
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		for end < len(runes) && !safeBoundary(runes[end-1], stages) {
			end++
		}
		chunks = append(chunks, string(runes[start:end]))
		start = end
	}
	return chunks
}

func safeBoundary(r rune, stages []*dict.Set) bool {
	for _, set := range stages {
		if !set.Boundary(r) {
			return false
		}
	}
	return true
}
