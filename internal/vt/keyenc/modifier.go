package keyenc

import (
	"fmt"

	"github.com/termforge/keywire/internal/input/key"
)

// modifierParams is the xterm modifier parameter table. It is an
// explicit enumeration rather than arithmetic so the contract stays
// bounded to exactly these seven combinations.
var modifierParams = map[key.Modifier]int{
	key.ModShift:                            2,
	key.ModAlt:                              3,
	key.ModShift | key.ModAlt:               4,
	key.ModCtrl:                             5,
	key.ModShift | key.ModCtrl:              6,
	key.ModAlt | key.ModCtrl:                7,
	key.ModShift | key.ModAlt | key.ModCtrl: 8,
}

// EncodeModifiers maps a modifier set to the xterm parameter in [2,8].
// The empty set and any set containing a modifier outside
// {Shift, Alt, Ctrl} fail with ErrUnsupportedModifierCombination;
// callers short-circuit the no-modifier case before composing.
func EncodeModifiers(mods key.Modifier) (int, error) {
	if p, ok := modifierParams[mods]; ok {
		return p, nil
	}
	if mods.IsEmpty() {
		return 0, fmt.Errorf("%w: empty set", ErrUnsupportedModifierCombination)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedModifierCombination, mods)
}
