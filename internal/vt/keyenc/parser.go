package keyenc

import (
	"fmt"
	"strconv"
)

// Prefix identifies the introducer of a capability template.
type Prefix uint8

const (
	// PrefixCSI is the Control Sequence Introducer, ESC [.
	PrefixCSI Prefix = iota
	// PrefixSS3 is Single Shift Three, ESC O.
	PrefixSS3
)

// String returns a string representation of the prefix.
func (p Prefix) String() string {
	switch p {
	case PrefixCSI:
		return "CSI"
	case PrefixSS3:
		return "SS3"
	default:
		return "unknown"
	}
}

// ParsedCapability is the structured form of a capability template.
type ParsedCapability struct {
	// Prefix is the sequence introducer of the base template.
	Prefix Prefix

	// Num is the embedded numeric code for tilde-form templates;
	// zero for letter-form templates.
	Num int

	// Final is the terminating character: '~' or a letter.
	Final byte
}

// ParseCapability decomposes a capability template into structured form.
// Exactly two shapes are recognized, the only ones with a defined
// modifier composition rule:
//
//	ESC [ N ~          (CSI tilde form)
//	ESC [ c / ESC O c  (CSI or SS3 letter form)
//
// Anything else fails with ErrUnsupportedCapability.
func ParseCapability(template string) (ParsedCapability, error) {
	if len(template) < 3 || template[0] != 0x1b {
		return ParsedCapability{}, fmt.Errorf("%w: %q", ErrUnsupportedCapability, template)
	}

	body := template[2:]
	switch template[1] {
	case '[':
		if body[len(body)-1] == '~' {
			num, err := strconv.Atoi(body[:len(body)-1])
			if err != nil || num < 0 {
				return ParsedCapability{}, fmt.Errorf("%w: %q", ErrUnsupportedCapability, template)
			}
			return ParsedCapability{Prefix: PrefixCSI, Num: num, Final: '~'}, nil
		}
		if len(body) == 1 && isLetter(body[0]) {
			return ParsedCapability{Prefix: PrefixCSI, Final: body[0]}, nil
		}
	case 'O':
		if len(body) == 1 && isLetter(body[0]) {
			return ParsedCapability{Prefix: PrefixSS3, Final: body[0]}, nil
		}
	}

	return ParsedCapability{}, fmt.Errorf("%w: %q", ErrUnsupportedCapability, template)
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
