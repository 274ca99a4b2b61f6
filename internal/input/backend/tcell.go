package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/termforge/keywire/internal/input/key"
)

// specialKeys maps tcell special keys onto the key package.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape: key.KeyEscape,
	tcell.KeyEnter:  key.KeyEnter,
	tcell.KeyTab:    key.KeyTab,
	tcell.KeyDelete: key.KeyDelete,
	tcell.KeyInsert: key.KeyInsert,
	tcell.KeyHome:   key.KeyHome,
	tcell.KeyEnd:    key.KeyEnd,
	tcell.KeyPgUp:   key.KeyPageUp,
	tcell.KeyPgDn:   key.KeyPageDown,
	tcell.KeyUp:     key.KeyUp,
	tcell.KeyDown:   key.KeyDown,
	tcell.KeyLeft:   key.KeyLeft,
	tcell.KeyRight:  key.KeyRight,
	tcell.KeyF1:     key.KeyF1,
	tcell.KeyF2:     key.KeyF2,
	tcell.KeyF3:     key.KeyF3,
	tcell.KeyF4:     key.KeyF4,
	tcell.KeyF5:     key.KeyF5,
	tcell.KeyF6:     key.KeyF6,
	tcell.KeyF7:     key.KeyF7,
	tcell.KeyF8:     key.KeyF8,
	tcell.KeyF9:     key.KeyF9,
	tcell.KeyF10:    key.KeyF10,
	tcell.KeyF11:    key.KeyF11,
	tcell.KeyF12:    key.KeyF12,
}

// eventFromTcell maps a tcell key event 1:1 onto the key package.
// tcell cannot observe key-up, so every event is a press.
func eventFromTcell(ev *tcell.EventKey) (key.Event, bool) {
	mods := modifiersFromTcell(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), true

	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true

	default:
		if mapped, ok := specialKeys[k]; ok {
			return key.NewSpecialEvent(mapped, mods), true
		}
		// tcell folds Ctrl+letter into dedicated key codes; report them
		// as the underlying rune with Ctrl.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := rune('a' + (k - tcell.KeyCtrlA))
			return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
		}
		return key.Event{}, false
	}
}

// modifiersFromTcell converts the tcell modifier mask.
func modifiersFromTcell(mods tcell.ModMask) key.Modifier {
	var out key.Modifier
	if mods&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if mods&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if mods&tcell.ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if mods&tcell.ModMeta != 0 {
		out = out.With(key.ModMeta)
	}
	return out
}
