package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Up", "Home", "F5", "PageDown"
//   - With modifiers: "Ctrl+Up", "Alt+F4", "Ctrl+Shift+End"
//   - Angle-bracket style: "<C-Up>", "<A-F4>", "<C-S-End>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// Angle-bracket <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseBracketStyle(spec[1 : len(spec)-1])
	}

	// Modifier+key format (Ctrl+Up, Alt+F4)
	if strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseSingle(spec)
}

// parseBracketStyle parses notation like "C-Up", "A-F4", "Home".
func parseBracketStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")

	var mods Modifier
	var keyPart string

	if len(parts) == 1 {
		keyPart = parts[0]
	} else {
		// Last part is the key, rest are modifiers
		keyPart = parts[len(parts)-1]
		for _, p := range parts[:len(parts)-1] {
			p = strings.ToLower(strings.TrimSpace(p))
			switch p {
			case "c":
				mods = mods.With(ModCtrl)
			case "a":
				mods = mods.With(ModAlt)
			case "s":
				mods = mods.With(ModShift)
			case "m":
				mods = mods.With(ModMeta)
			default:
				return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
			}
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+Up" style notation.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(strings.ToLower(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	return parseKeyWithModifiers(keyPart, mods)
}

// parseSingle parses a single character or key name.
func parseSingle(spec string) (Event, error) {
	if key := KeyFromName(spec); key != KeyNone {
		return NewSpecialEvent(key, ModNone), nil
	}

	runes := []rune(spec)
	if len(runes) == 1 {
		r := runes[0]
		var mods Modifier
		// Uppercase letters have implicit Shift
		if unicode.IsUpper(r) {
			mods = ModShift
		}
		return NewRuneEvent(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// parseKeyWithModifiers parses a key part with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	if key := KeyFromName(keyPart); key != KeyNone {
		if key == KeySpace {
			return NewRuneEvent(' ', mods), nil
		}
		return NewSpecialEvent(key, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		// For Ctrl combinations, use lowercase
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return NewRuneEvent(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
