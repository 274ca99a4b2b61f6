package key

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Event represents a single key event.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Action is press, repeat, or release.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a press event with the current timestamp.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{
		Key:       key,
		Rune:      r,
		Modifiers: mods,
		Action:    ActionPress,
		Timestamp: time.Now(),
	}
}

// NewRuneEvent creates a press event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Action:    ActionPress,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a press event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Action:    ActionPress,
		Timestamp: time.Now(),
	}
}

// WithAction returns a copy of the event with the given action.
func (e Event) WithAction(action Action) Event {
	e.Action = action
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsSpecial returns true if this is a special (non-character) key.
func (e Event) IsSpecial() bool {
	return e.Key.IsSpecial()
}

// IsRelease returns true if this is a key-up event.
func (e Event) IsRelease() bool {
	return e.Action == ActionRelease
}

// String returns a canonical string representation.
// Examples: "a", "Up", "C-Up", "C-S-F5"
func (e Event) String() string {
	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "M")
	}
	// Only show Shift for non-character keys
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)
	return strings.Join(parts, "-")
}

// Equals returns true if two events represent the same key state.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers &&
		e.Action == other.Action
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s, Action: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String(), e.Action.String())
}
