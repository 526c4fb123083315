package zhoconv

import "strings"

// Config identifies one of the supported conversion profiles. It is a
// closed enumeration: the set of profiles is fixed, each value has a
// stable integer code and a canonical lowercase name, and the name
// round-trips through ParseConfig unchanged.
type Config int

// The supported conversion profiles. The integer codes are stable and
// may be persisted; the declaration order matches SupportedConfigs().
const (
	S2T   Config = iota // Simplified to Traditional
	T2S                 // Traditional to Simplified
	S2TW                // Simplified to Traditional (Taiwan standard)
	TW2S                // Traditional (Taiwan standard) to Simplified
	S2TWP               // Simplified to Traditional (Taiwan standard, with phrases)
	TW2SP               // Traditional (Taiwan standard, with phrases) to Simplified
	S2HK                // Simplified to Traditional (Hong Kong variant)
	HK2S                // Traditional (Hong Kong variant) to Simplified
	T2TW                // Traditional to Taiwan standard
	T2TWP               // Traditional to Taiwan standard, with phrases
	T2HK                // Traditional to Hong Kong variant
	TW2T                // Taiwan standard to Traditional
	TW2TP               // Taiwan standard to Traditional, with phrases
	HK2T                // Hong Kong variant to Traditional
	T2JP                // Traditional (Kyujitai) to Japanese Shinjitai
	JP2T                // Japanese Shinjitai to Traditional (Kyujitai)
)

// DefaultConfig is used wherever no (valid) profile has been specified.
const DefaultConfig = S2T

var configNames = []string{
	"s2t", "t2s", "s2tw", "tw2s", "s2twp", "tw2sp", "s2hk", "hk2s",
	"t2tw", "t2twp", "t2hk", "tw2t", "tw2tp", "hk2t", "t2jp", "jp2t",
}

var configByName = make(map[string]Config, len(configNames))

func init() {
	for i, name := range configNames {
		configByName[name] = Config(i)
	}
}

func (c Config) valid() bool {
	return c >= 0 && int(c) < len(configNames)
}

// String returns the canonical lowercase profile name, or the empty
// string for out-of-range values.
func (c Config) String() string {
	if !c.valid() {
		return ""
	}
	return configNames[c]
}

// ParseConfig maps a profile name to its Config value. Parsing is
// case-insensitive and tolerates surrounding whitespace, so enum-style
// spellings like "S2TWP" resolve as well. Unknown or empty names yield
// ok=false; parsing is pure and never touches any error state.
func ParseConfig(name string) (Config, bool) {
	c, ok := configByName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// IsSupported reports whether name parses to a supported profile.
func IsSupported(name string) bool {
	_, ok := ParseConfig(name)
	return ok
}

// SupportedConfigs lists the canonical profile names in declaration
// order. The returned slice is a copy; callers may mutate it freely.
func SupportedConfigs() []string {
	names := make([]string, len(configNames))
	copy(names, configNames)
	return names
}
