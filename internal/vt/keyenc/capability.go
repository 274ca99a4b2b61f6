package keyenc

import (
	"fmt"

	"github.com/termforge/keywire/internal/input/key"
)

// baseKeyMap holds the mode-independent templates: editing and paging
// keys use the CSI-tilde form, F1-F4 use their legacy SS3 form.
var baseKeyMap = map[key.Key]string{
	key.KeyInsert:   "\x1b[2~",
	key.KeyDelete:   "\x1b[3~",
	key.KeyPageUp:   "\x1b[5~",
	key.KeyPageDown: "\x1b[6~",
	key.KeyF1:       "\x1bOP",
	key.KeyF2:       "\x1bOQ",
	key.KeyF3:       "\x1bOR",
	key.KeyF4:       "\x1bOS",
	key.KeyF5:       "\x1b[15~",
	key.KeyF6:       "\x1b[17~",
	key.KeyF7:       "\x1b[18~",
	key.KeyF8:       "\x1b[19~",
	key.KeyF9:       "\x1b[20~",
	key.KeyF10:      "\x1b[21~",
	key.KeyF11:      "\x1b[23~",
	key.KeyF12:      "\x1b[24~",
}

// normalKeyMap holds the movement-key templates emitted when DECCKM is
// reset, applicationKeyMap the SS3 variants emitted when it is set.
var normalKeyMap = map[key.Key]string{
	key.KeyUp:    "\x1b[A",
	key.KeyDown:  "\x1b[B",
	key.KeyRight: "\x1b[C",
	key.KeyLeft:  "\x1b[D",
	key.KeyHome:  "\x1b[H",
	key.KeyEnd:   "\x1b[F",
}

var applicationKeyMap = map[key.Key]string{
	key.KeyUp:    "\x1bOA",
	key.KeyDown:  "\x1bOB",
	key.KeyRight: "\x1bOC",
	key.KeyLeft:  "\x1bOD",
	key.KeyHome:  "\x1bOH",
	key.KeyEnd:   "\x1bOF",
}

// encodableKeys is the closed set of keys this package translates.
// The capability tables must cover exactly this set in both modes;
// validateTables enforces that at init.
var encodableKeys = []key.Key{
	key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight,
	key.KeyHome, key.KeyEnd,
	key.KeyInsert, key.KeyDelete, key.KeyPageUp, key.KeyPageDown,
	key.KeyF1, key.KeyF2, key.KeyF3, key.KeyF4,
	key.KeyF5, key.KeyF6, key.KeyF7, key.KeyF8,
	key.KeyF9, key.KeyF10, key.KeyF11, key.KeyF12,
}

// Handles reports whether k has a capability entry.
func Handles(k key.Key) bool {
	if _, ok := baseKeyMap[k]; ok {
		return true
	}
	_, ok := normalKeyMap[k]
	return ok
}

// lookupTemplate returns the base template for k under the given cursor
// key mode. The bool result is false for keys outside the encodable set.
func lookupTemplate(k key.Key, applicationCursorKeys bool) (string, bool) {
	if t, ok := baseKeyMap[k]; ok {
		return t, true
	}
	if applicationCursorKeys {
		t, ok := applicationKeyMap[k]
		return t, ok
	}
	t, ok := normalKeyMap[k]
	return t, ok
}

// capabilityNames indexes templates by their terminfo mnemonic. The set
// includes entries like kri/kind that exist in the database but have no
// modifier composition rule; ParseCapability rejects those.
var capabilityNames = map[string]string{
	"kcuu1": "\x1bOA",
	"kcud1": "\x1bOB",
	"kcuf1": "\x1bOC",
	"kcub1": "\x1bOD",
	"khome": "\x1bOH",
	"kend":  "\x1bOF",
	"kich1": "\x1b[2~",
	"kdch1": "\x1b[3~",
	"kpp":   "\x1b[5~",
	"knp":   "\x1b[6~",
	"kf1":   "\x1bOP",
	"kf2":   "\x1bOQ",
	"kf3":   "\x1bOR",
	"kf4":   "\x1bOS",
	"kf5":   "\x1b[15~",
	"kf6":   "\x1b[17~",
	"kf7":   "\x1b[18~",
	"kf8":   "\x1b[19~",
	"kf9":   "\x1b[20~",
	"kf10":  "\x1b[21~",
	"kf11":  "\x1b[23~",
	"kf12":  "\x1b[24~",

	// Scroll keys: parameters are already bound, so these cannot take
	// a modifier parameter.
	"kri":  "\x1b[1;2A",
	"kind": "\x1b[1;2B",
}

// Capability returns the template registered under a terminfo mnemonic.
func Capability(name string) (string, error) {
	t, ok := capabilityNames[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCapability, name)
	}
	return t, nil
}

func init() {
	if err := validateTables(); err != nil {
		panic("keyenc: " + err.Error())
	}
}

// validateTables checks the capability tables once, before any event
// processing. Every encodable key must resolve in both cursor key modes
// and its normal-mode template must parse, since that template is the
// base for modifier composition.
func validateTables() error {
	for _, k := range encodableKeys {
		for _, app := range []bool{false, true} {
			if _, ok := lookupTemplate(k, app); !ok {
				return fmt.Errorf("no template for %s (application=%v)", k, app)
			}
		}
		base, _ := lookupTemplate(k, false)
		if _, err := ParseCapability(base); err != nil {
			return fmt.Errorf("template for %s does not compose: %v", k, err)
		}
	}
	return nil
}
