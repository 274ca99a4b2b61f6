package keyenc

import (
	"bytes"
	"testing"
)

func TestComposeTildeForm(t *testing.T) {
	tests := []struct {
		parsed ParsedCapability
		param  int
		want   string
	}{
		{ParsedCapability{Prefix: PrefixCSI, Num: 15, Final: '~'}, 3, "\x1b[15;3~"},
		{ParsedCapability{Prefix: PrefixCSI, Num: 2, Final: '~'}, 5, "\x1b[2;5~"},
		{ParsedCapability{Prefix: PrefixCSI, Num: 24, Final: '~'}, 8, "\x1b[24;8~"},
	}

	for _, tt := range tests {
		if got := Compose(tt.parsed, tt.param); !bytes.Equal(got, []byte(tt.want)) {
			t.Errorf("Compose(%+v, %d) = %q, want %q", tt.parsed, tt.param, got, tt.want)
		}
	}
}

func TestComposeLetterForm(t *testing.T) {
	tests := []struct {
		parsed ParsedCapability
		param  int
		want   string
	}{
		// SS3 bases are rewritten to CSI: no parameter slot otherwise.
		{ParsedCapability{Prefix: PrefixSS3, Final: 'A'}, 4, "\x1b[1;4A"},
		{ParsedCapability{Prefix: PrefixSS3, Final: 'A'}, 3, "\x1b[1;3A"},
		{ParsedCapability{Prefix: PrefixCSI, Final: 'H'}, 2, "\x1b[1;2H"},
		{ParsedCapability{Prefix: PrefixSS3, Final: 'P'}, 5, "\x1b[1;5P"},
	}

	for _, tt := range tests {
		if got := Compose(tt.parsed, tt.param); !bytes.Equal(got, []byte(tt.want)) {
			t.Errorf("Compose(%+v, %d) = %q, want %q", tt.parsed, tt.param, got, tt.want)
		}
	}
}

func TestComposeFromCapabilityNames(t *testing.T) {
	// The documented round trips: capability name through parse and
	// compose.
	tests := []struct {
		name  string
		param int
		want  string
	}{
		{"kcuu1", 4, "\x1b[1;4A"},
		{"kcuu1", 3, "\x1b[1;3A"},
		{"kf5", 3, "\x1b[15;3~"},
	}

	for _, tt := range tests {
		tmpl, err := Capability(tt.name)
		if err != nil {
			t.Fatalf("Capability(%s) error: %v", tt.name, err)
		}
		parsed, err := ParseCapability(tmpl)
		if err != nil {
			t.Fatalf("ParseCapability(%s) error: %v", tt.name, err)
		}
		if got := Compose(parsed, tt.param); !bytes.Equal(got, []byte(tt.want)) {
			t.Errorf("Compose(parse(%s), %d) = %q, want %q", tt.name, tt.param, got, tt.want)
		}
	}
}
