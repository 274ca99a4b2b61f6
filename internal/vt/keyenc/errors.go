package keyenc

import "errors"

// Translation errors. Both are local to a single key event: the caller
// drops the event (or reports it) and no partial sequence is ever
// produced.
var (
	// ErrUnsupportedCapability indicates a capability template with no
	// modifier composition rule, or a key with no capability at all.
	ErrUnsupportedCapability = errors.New("unsupported capability")

	// ErrUnsupportedModifierCombination indicates a modifier set outside
	// the eight documented Shift/Alt/Ctrl combinations.
	ErrUnsupportedModifierCombination = errors.New("unsupported modifier combination")

	// ErrUnknownCapability indicates an unrecognized capability mnemonic.
	ErrUnknownCapability = errors.New("unknown capability name")
)
