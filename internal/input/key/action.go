package key

// Action distinguishes key press, auto-repeat, and release events.
// Platforms that cannot observe key-up (most terminals) only ever
// report ActionPress.
type Action uint8

const (
	// ActionPress is the initial press of a key.
	ActionPress Action = iota
	// ActionRepeat is an auto-repeat of a held key.
	ActionRepeat
	// ActionRelease is a key being let go.
	ActionRelease
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRepeat:
		return "repeat"
	case ActionRelease:
		return "release"
	default:
		return "unknown"
	}
}
