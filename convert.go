package zhoconv

import (
	"errors"
	"fmt"
	"sync"

	"github.com/laisuk/zhoconv/dict"
	"github.com/laisuk/zhoconv/segment"
)

// ErrClosed flags use of a converter after Close.
var ErrClosed = errors.New("converter is closed")

// A pipeline is the resolved form of one conversion profile: dictionary
// passes applied in order, plus an optional punctuation table for the
// final substitution step.
type pipeline struct {
	stages []*dict.Set
	punct  *dict.PunctTable
}

// resources is the shared immutable state behind all converter handles:
// the lexicon registry and one resolved pipeline per profile. It is
// built exactly once per process; afterwards there are only readers.
type resources struct {
	reg       *dict.Registry
	pipelines []pipeline
}

var (
	resOnce sync.Once
	res     *resources
	resErr  error
)

// pipelineSpecs binds every profile to its dictionary passes and
// punctuation direction. Profiles whose source script is Simplified
// substitute towards corner brackets; all others substitute towards
// Simplified quoting.
var pipelineSpecs = []struct {
	cfg    Config
	stages [][]string
	punct  string
}{
	{S2T, [][]string{{dict.STPhrases, dict.STCharacters}}, dict.STPunctuation},
	{T2S, [][]string{{dict.TSPhrases, dict.TSCharacters}}, dict.TSPunctuation},
	{S2TW, [][]string{{dict.STPhrases, dict.STCharacters}, {dict.TWVariants}}, dict.STPunctuation},
	{TW2S, [][]string{{dict.TWVariantsRev}, {dict.TSPhrases, dict.TSCharacters}}, dict.TSPunctuation},
	{S2TWP, [][]string{{dict.STPhrases, dict.STCharacters}, {dict.TWPhrases}, {dict.TWVariants}}, dict.STPunctuation},
	{TW2SP, [][]string{{dict.TWPhrasesRev, dict.TWVariantsRev}, {dict.TSPhrases, dict.TSCharacters}}, dict.TSPunctuation},
	{S2HK, [][]string{{dict.STPhrases, dict.STCharacters}, {dict.HKVariants}}, dict.STPunctuation},
	{HK2S, [][]string{{dict.HKVariantsRev}, {dict.TSPhrases, dict.TSCharacters}}, dict.TSPunctuation},
	{T2TW, [][]string{{dict.TWVariants}}, dict.TSPunctuation},
	{T2TWP, [][]string{{dict.TWPhrases}, {dict.TWVariants}}, dict.TSPunctuation},
	{T2HK, [][]string{{dict.HKVariants}}, dict.TSPunctuation},
	{TW2T, [][]string{{dict.TWVariantsRev}}, dict.TSPunctuation},
	{TW2TP, [][]string{{dict.TWVariantsRev}, {dict.TWPhrasesRev}}, dict.TSPunctuation},
	{HK2T, [][]string{{dict.HKVariantsRev}}, dict.TSPunctuation},
	{T2JP, [][]string{{dict.JPVariants}}, dict.TSPunctuation},
	{JP2T, [][]string{{dict.JPVariantsRev}}, dict.TSPunctuation},
}

// loadResources loads the bundled lexicons and resolves all pipelines.
// The first caller does the work; everybody else shares the outcome.
func loadResources() (*resources, error) {
	resOnce.Do(func() {
		reg, err := dict.Load()
		if err != nil {
			resErr = fmt.Errorf("cannot load conversion dictionaries: %w", err)
			return
		}
		r := &resources{
			reg:       reg,
			pipelines: make([]pipeline, len(configNames)),
		}
		for _, def := range pipelineSpecs {
			p := pipeline{}
			for _, names := range def.stages {
				set, err := reg.Set(names...)
				if err != nil {
					resErr = fmt.Errorf("profile %s: %w", def.cfg, err)
					return
				}
				p.stages = append(p.stages, set)
			}
			punct, ok := reg.Punctuation(def.punct)
			if !ok {
				resErr = fmt.Errorf("profile %s: unknown punctuation lexicon %q", def.cfg, def.punct)
				return
			}
			p.punct = punct
			r.pipelines[def.cfg] = p
		}
		res = r
	})
	return res, resErr
}

// A Converter applies conversion profiles to text. It layers a small
// amount of mutable per-caller state (the active profile, the parallel
// flag and the last-error slot) over the shared immutable dictionary
// data. A Converter must not be used from two goroutines at once; create
// one per goroutine or task instead, they are cheap.
type Converter struct {
	res      *resources
	config   Config
	parallel bool
	lastErr  string
}

// New creates a ready-to-use Converter with the default profile (s2t).
// It fails when the bundled dictionary resources cannot be loaded; that
// is a fatal condition, not one reported through the error slot.
func New() (*Converter, error) {
	r, err := loadResources()
	if err != nil {
		return nil, err
	}
	return &Converter{res: r, config: DefaultConfig}, nil
}

// NewFromConfig creates a Converter with the given profile name. An
// invalid name falls back to the default profile and records an error in
// the new handle's error slot; dictionary load failure is still returned
// as a hard error.
func NewFromConfig(name string) (*Converter, error) {
	c, err := New()
	if err != nil {
		return nil, err
	}
	c.SetConfig(name)
	return c, nil
}

// Close releases the handle. The shared dictionary data stays alive for
// other handles; only this handle becomes unusable.
func (c *Converter) Close() error {
	c.res = nil
	return nil
}

// Config returns the handle's active profile.
func (c *Converter) Config() Config {
	return c.config
}

// SetConfig updates the handle's active profile by name. An invalid name
// falls back to the default profile and records an error.
func (c *Converter) SetConfig(name string) {
	cfg, ok := ParseConfig(name)
	if !ok {
		c.setError("Invalid config: " + name)
		cfg = DefaultConfig
	} else {
		c.clearError()
	}
	c.config = cfg
}

// SetConfigValue updates the handle's active profile by enumeration
// value, the fast path avoiding name parsing. Out-of-range values fall
// back to the default profile and record an error.
func (c *Converter) SetConfigValue(cfg Config) {
	if !cfg.valid() {
		c.setError(fmt.Sprintf("Invalid config: %d", int(cfg)))
		cfg = DefaultConfig
	} else {
		c.clearError()
	}
	c.config = cfg
}

// IsParallel reports whether this handle fans large inputs out to worker
// goroutines. The flag is scoped to the handle; unrelated converters are
// unaffected.
func (c *Converter) IsParallel() bool {
	return c.parallel
}

// SetParallel toggles parallel mode for this handle.
func (c *Converter) SetParallel(parallel bool) {
	c.parallel = parallel
}

// LastError returns the message recorded by the most recent recoverable
// failure, or the empty string after a successful operation. It never
// returns a "null" value and reading it never fails.
func (c *Converter) LastError() string {
	return c.lastErr
}

func (c *Converter) setError(msg string) {
	c.lastErr = msg
	CT().Errorf("zhoconv: %s", msg)
}

func (c *Converter) clearError() {
	c.lastErr = ""
}

// Convert converts input using the named profile. An unknown profile
// name returns the input unchanged and records an error; it is a
// recoverable condition, not a fatal one.
func (c *Converter) Convert(input, config string, punctuation bool) string {
	cfg, ok := ParseConfig(config)
	if !ok {
		c.setError("Invalid config: " + config)
		return input
	}
	return c.ConvertConfig(input, cfg, punctuation)
}

// ConvertConfig converts input using a profile given by enumeration
// value, the fast path avoiding name parsing.
func (c *Converter) ConvertConfig(input string, cfg Config, punctuation bool) string {
	if c.res == nil {
		c.setError(ErrClosed.Error())
		return input
	}
	if !cfg.valid() {
		c.setError(fmt.Sprintf("Invalid config: %d", int(cfg)))
		return input
	}
	c.clearError()
	if input == "" {
		return ""
	}
	p := &c.res.pipelines[cfg]
	if c.parallel {
		return convertParallel(p, input, punctuation)
	}
	return convertSequential(p, input, punctuation)
}

// ConvertText converts input using the handle's active profile.
func (c *Converter) ConvertText(input string, punctuation bool) string {
	return c.ConvertConfig(input, c.config, punctuation)
}

// ConvertBytes is the byte-slice variant of ConvertConfig. A nil input
// is the null-input case: it yields nil and records an error, as opposed
// to an empty input, which yields an empty result with no error.
func (c *Converter) ConvertBytes(input []byte, cfg Config, punctuation bool) []byte {
	if input == nil {
		c.setError("Input is null")
		return nil
	}
	out := c.ConvertConfig(string(input), cfg, punctuation)
	return []byte(out)
}

// convertSequential runs the pipeline stages in declared order, feeding
// each stage's output to the next, then applies the punctuation table
// when requested.
func convertSequential(p *pipeline, text string, punctuation bool) string {
	for _, set := range p.stages {
		text = segment.Apply(set, text)
	}
	if punctuation && p.punct != nil {
		text = p.punct.Apply(text)
	}
	return text
}
