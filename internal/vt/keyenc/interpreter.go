package keyenc

import (
	"fmt"

	"github.com/termforge/keywire/internal/input/key"
)

// Interpret translates a special-key event into the bytes a running
// program reads for it, honoring the session's cursor key mode (DECCKM).
//
// Release events yield (nil, nil): legacy key reporting never reports
// key-up. Unmodified keys emit their base template verbatim. Modified
// keys compose the normal-mode template with the xterm modifier
// parameter; movement keys use their CSI variant here regardless of
// cursorKeyMode, since modified keys are always reported via CSI.
//
// The result is either one complete escape sequence, or nothing at all.
func Interpret(ev key.Event, cursorKeyMode bool) ([]byte, error) {
	if ev.Action == key.ActionRelease {
		return nil, nil
	}

	tmpl, ok := lookupTemplate(ev.Key, cursorKeyMode)
	if !ok {
		return nil, fmt.Errorf("%w: no template for %s", ErrUnsupportedCapability, ev.Key)
	}

	if ev.Modifiers.IsEmpty() {
		return []byte(tmpl), nil
	}

	base, _ := lookupTemplate(ev.Key, false)
	parsed, err := ParseCapability(base)
	if err != nil {
		return nil, err
	}
	param, err := EncodeModifiers(ev.Modifiers)
	if err != nil {
		return nil, err
	}
	return Compose(parsed, param), nil
}
