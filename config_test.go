package zhoconv_test

import (
	"testing"

	"github.com/laisuk/zhoconv"
)

func TestConfigNamesRoundTrip(t *testing.T) {
	for _, name := range zhoconv.SupportedConfigs() {
		cfg, ok := zhoconv.ParseConfig(name)
		if !ok {
			t.Errorf("supported profile %q does not parse", name)
			continue
		}
		if cfg.String() != name {
			t.Errorf("profile %q round-trips to %q", name, cfg.String())
		}
	}
}

func TestSupportedConfigsOrder(t *testing.T) {
	want := []string{
		"s2t", "t2s", "s2tw", "tw2s", "s2twp", "tw2sp", "s2hk", "hk2s",
		"t2tw", "t2twp", "t2hk", "tw2t", "tw2tp", "hk2t", "t2jp", "jp2t",
	}
	have := zhoconv.SupportedConfigs()
	if len(have) != len(want) {
		t.Fatalf("expected %d profiles, have %d", len(want), len(have))
	}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("profile %d: expected %q, have %q", i, want[i], have[i])
		}
	}
}

func TestParseConfigLenient(t *testing.T) {
	cases := []struct {
		in   string
		want zhoconv.Config
		ok   bool
	}{
		{"s2t", zhoconv.S2T, true},
		{"S2TWP", zhoconv.S2TWP, true},
		{" tw2sp ", zhoconv.TW2SP, true},
		{"Jp2T", zhoconv.JP2T, true},
		{"", 0, false},
		{"s2s", 0, false},
		{"zh2en", 0, false},
	}
	for _, c := range cases {
		cfg, ok := zhoconv.ParseConfig(c.in)
		if ok != c.ok || (ok && cfg != c.want) {
			t.Errorf("ParseConfig(%q) = %v, %v", c.in, cfg, ok)
		}
	}
}

func TestIsSupported(t *testing.T) {
	if !zhoconv.IsSupported("hk2s") {
		t.Errorf("hk2s should be supported")
	}
	if zhoconv.IsSupported("nope") {
		t.Errorf("nope should not be supported")
	}
}

func TestInvalidConfigStringIsEmpty(t *testing.T) {
	if s := zhoconv.Config(-1).String(); s != "" {
		t.Errorf("expected empty name for out-of-range value, have %q", s)
	}
	if s := zhoconv.Config(99).String(); s != "" {
		t.Errorf("expected empty name for out-of-range value, have %q", s)
	}
}

func TestSupportedConfigsIsACopy(t *testing.T) {
	names := zhoconv.SupportedConfigs()
	names[0] = "tampered"
	if zhoconv.SupportedConfigs()[0] != "s2t" {
		t.Errorf("mutating the returned slice must not affect the enumeration")
	}
}
