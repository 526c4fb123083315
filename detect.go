package zhoconv

import (
	"strings"

	"github.com/laisuk/zhoconv/segment"
)

// Classification codes returned by ZhoCheck.
const (
	ScriptOther       = 0 // neither, mixed-in noise only, or empty
	ScriptTraditional = 1
	ScriptSimplified  = 2
)

// zhoCheckLimit bounds the number of runes sampled by ZhoCheck. Script
// membership shows up within the first few dozen Han characters; scanning
// megabytes of input would buy nothing.
const zhoCheckLimit = 200

// ZhoCheck classifies text as predominantly Traditional (1), Simplified
// (2) or neither (0). Empty input returns 0 without touching the error
// slot; the check is pure.
//
// The classification reuses the conversion tables: a sample that changes
// under Traditional-to-Simplified conversion contains Traditional-only
// characters, a sample that changes under Simplified-to-Traditional
// conversion contains Simplified-only ones. Text that both scripts write
// identically (and non-Han text) changes under neither and yields 0.
func (c *Converter) ZhoCheck(text string) int {
	if c.res == nil || text == "" {
		return ScriptOther
	}
	sample := detectSample(text)
	if sample == "" {
		return ScriptOther
	}
	t2s := c.res.pipelines[T2S].stages[0]
	if segment.Apply(t2s, sample) != sample {
		return ScriptTraditional
	}
	s2t := c.res.pipelines[S2T].stages[0]
	if segment.Apply(s2t, sample) != sample {
		return ScriptSimplified
	}
	return ScriptOther
}

// detectSample strips ASCII noise and truncates to the sampling bound.
func detectSample(text string) string {
	var sb strings.Builder
	count := 0
	for _, r := range text {
		if r < 0x80 {
			continue
		}
		sb.WriteRune(r)
		count++
		if count >= zhoCheckLimit {
			break
		}
	}
	return sb.String()
}
