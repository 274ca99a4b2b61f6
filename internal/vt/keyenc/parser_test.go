package keyenc

import (
	"errors"
	"testing"
)

func TestParseCapabilityTildeForm(t *testing.T) {
	tests := []struct {
		template string
		num      int
	}{
		{"\x1b[2~", 2},
		{"\x1b[3~", 3},
		{"\x1b[15~", 15},
		{"\x1b[24~", 24},
	}

	for _, tt := range tests {
		got, err := ParseCapability(tt.template)
		if err != nil {
			t.Errorf("ParseCapability(%q) error: %v", tt.template, err)
			continue
		}
		want := ParsedCapability{Prefix: PrefixCSI, Num: tt.num, Final: '~'}
		if got != want {
			t.Errorf("ParseCapability(%q) = %+v, want %+v", tt.template, got, want)
		}
	}
}

func TestParseCapabilityLetterForm(t *testing.T) {
	tests := []struct {
		template string
		prefix   Prefix
		final    byte
	}{
		{"\x1b[A", PrefixCSI, 'A'},
		{"\x1b[H", PrefixCSI, 'H'},
		{"\x1bOA", PrefixSS3, 'A'},
		{"\x1bOF", PrefixSS3, 'F'},
		{"\x1bOP", PrefixSS3, 'P'},
	}

	for _, tt := range tests {
		got, err := ParseCapability(tt.template)
		if err != nil {
			t.Errorf("ParseCapability(%q) error: %v", tt.template, err)
			continue
		}
		want := ParsedCapability{Prefix: tt.prefix, Final: tt.final}
		if got != want {
			t.Errorf("ParseCapability(%q) = %+v, want %+v", tt.template, got, want)
		}
	}
}

func TestParseCapabilityRejects(t *testing.T) {
	templates := []string{
		"",
		"\x1b",
		"\x1b[",
		"A",
		"\x1b[1;2A", // parameters already bound (kri)
		"\x1b[~",    // tilde with no code
		"\x1b[1;5~", // parameterized tilde
		"\x1bM",     // bare escape function
		"\x1bO~",    // SS3 tilde is not a shape
		"\x1b[AB",   // trailing garbage
		"xyz",
	}

	for _, tmpl := range templates {
		if _, err := ParseCapability(tmpl); !errors.Is(err, ErrUnsupportedCapability) {
			t.Errorf("ParseCapability(%q) error = %v, want ErrUnsupportedCapability", tmpl, err)
		}
	}
}

func TestParseCapabilityScrollKeys(t *testing.T) {
	// The scroll capabilities exist in the name index but have no
	// composition rule.
	for _, name := range []string{"kri", "kind"} {
		tmpl, err := Capability(name)
		if err != nil {
			t.Fatalf("Capability(%s) error: %v", name, err)
		}
		if _, err := ParseCapability(tmpl); !errors.Is(err, ErrUnsupportedCapability) {
			t.Errorf("ParseCapability(%s=%q) error = %v, want ErrUnsupportedCapability", name, tmpl, err)
		}
	}
}

func TestPrefixString(t *testing.T) {
	if PrefixCSI.String() != "CSI" || PrefixSS3.String() != "SS3" {
		t.Error("Prefix.String mismatch")
	}
}
