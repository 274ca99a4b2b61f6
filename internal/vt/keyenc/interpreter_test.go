package keyenc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/termforge/keywire/internal/input/key"
)

func TestInterpretUnmodifiedMovementKeys(t *testing.T) {
	tests := []struct {
		k      key.Key
		app    string
		normal string
	}{
		{key.KeyUp, "\x1bOA", "\x1b[A"},
		{key.KeyDown, "\x1bOB", "\x1b[B"},
		{key.KeyRight, "\x1bOC", "\x1b[C"},
		{key.KeyLeft, "\x1bOD", "\x1b[D"},
		{key.KeyHome, "\x1bOH", "\x1b[H"},
		{key.KeyEnd, "\x1bOF", "\x1b[F"},
	}

	for _, tt := range tests {
		ev := key.NewSpecialEvent(tt.k, key.ModNone)

		got, err := Interpret(ev, true)
		if err != nil {
			t.Errorf("Interpret(%s, application) error: %v", tt.k, err)
		}
		if !bytes.Equal(got, []byte(tt.app)) {
			t.Errorf("Interpret(%s, application) = %q, want %q", tt.k, got, tt.app)
		}

		got, err = Interpret(ev, false)
		if err != nil {
			t.Errorf("Interpret(%s, normal) error: %v", tt.k, err)
		}
		if !bytes.Equal(got, []byte(tt.normal)) {
			t.Errorf("Interpret(%s, normal) = %q, want %q", tt.k, got, tt.normal)
		}
	}
}

func TestInterpretUnmodifiedEditingKeys(t *testing.T) {
	tests := []struct {
		k    key.Key
		want string
	}{
		{key.KeyInsert, "\x1b[2~"},
		{key.KeyDelete, "\x1b[3~"},
		{key.KeyPageUp, "\x1b[5~"},
		{key.KeyPageDown, "\x1b[6~"},
	}

	for _, tt := range tests {
		for _, app := range []bool{false, true} {
			got, err := Interpret(key.NewSpecialEvent(tt.k, key.ModNone), app)
			if err != nil {
				t.Errorf("Interpret(%s) error: %v", tt.k, err)
			}
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("Interpret(%s, application=%v) = %q, want %q", tt.k, app, got, tt.want)
			}
		}
	}
}

func TestInterpretFunctionKeys(t *testing.T) {
	// F1-F4 keep their SS3 form in both cursor key modes; F5-F12 always
	// use the CSI-tilde form.
	ss3 := map[key.Key]byte{
		key.KeyF1: 'P',
		key.KeyF2: 'Q',
		key.KeyF3: 'R',
		key.KeyF4: 'S',
	}
	tilde := map[key.Key]string{
		key.KeyF5:  "\x1b[15~",
		key.KeyF6:  "\x1b[17~",
		key.KeyF7:  "\x1b[18~",
		key.KeyF8:  "\x1b[19~",
		key.KeyF9:  "\x1b[20~",
		key.KeyF10: "\x1b[21~",
		key.KeyF11: "\x1b[23~",
		key.KeyF12: "\x1b[24~",
	}

	for _, app := range []bool{false, true} {
		for k, final := range ss3 {
			got, err := Interpret(key.NewSpecialEvent(k, key.ModNone), app)
			if err != nil {
				t.Fatalf("Interpret(%s) error: %v", k, err)
			}
			want := []byte{0x1b, 'O', final}
			if !bytes.Equal(got, want) {
				t.Errorf("Interpret(%s, application=%v) = %q, want %q", k, app, got, want)
			}
		}
		for k, want := range tilde {
			got, err := Interpret(key.NewSpecialEvent(k, key.ModNone), app)
			if err != nil {
				t.Fatalf("Interpret(%s) error: %v", k, err)
			}
			if !bytes.Equal(got, []byte(want)) {
				t.Errorf("Interpret(%s, application=%v) = %q, want %q", k, app, got, want)
			}
		}
	}
}

func TestInterpretModifiedKeys(t *testing.T) {
	tests := []struct {
		k    key.Key
		mods key.Modifier
		want string
	}{
		{key.KeyUp, key.ModCtrl, "\x1b[1;5A"},
		{key.KeyUp, key.ModShift | key.ModAlt, "\x1b[1;4A"},
		{key.KeyLeft, key.ModAlt, "\x1b[1;3D"},
		{key.KeyHome, key.ModShift, "\x1b[1;2H"},
		{key.KeyEnd, key.ModShift | key.ModAlt | key.ModCtrl, "\x1b[1;8F"},
		{key.KeyDelete, key.ModCtrl, "\x1b[3;5~"},
		{key.KeyPageUp, key.ModAlt, "\x1b[5;3~"},
		{key.KeyF1, key.ModCtrl, "\x1b[1;5P"},
		{key.KeyF5, key.ModAlt, "\x1b[15;3~"},
		{key.KeyF12, key.ModShift | key.ModCtrl, "\x1b[24;6~"},
	}

	for _, tt := range tests {
		// Modified keys report through CSI in either cursor key mode.
		for _, app := range []bool{false, true} {
			got, err := Interpret(key.NewSpecialEvent(tt.k, tt.mods), app)
			if err != nil {
				t.Errorf("Interpret(%s+%s) error: %v", tt.mods, tt.k, err)
				continue
			}
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("Interpret(%s+%s, application=%v) = %q, want %q", tt.mods, tt.k, app, got, tt.want)
			}
		}
	}
}

func TestInterpretReleaseProducesNothing(t *testing.T) {
	for _, k := range encodableKeys {
		for _, mods := range []key.Modifier{key.ModNone, key.ModCtrl, key.ModShift | key.ModAlt} {
			for _, app := range []bool{false, true} {
				ev := key.NewSpecialEvent(k, mods).WithAction(key.ActionRelease)
				got, err := Interpret(ev, app)
				if err != nil {
					t.Errorf("Interpret(release %s) error: %v", k, err)
				}
				if got != nil {
					t.Errorf("Interpret(release %s) = %q, want nothing", k, got)
				}
			}
		}
	}
}

func TestInterpretRepeatMatchesPress(t *testing.T) {
	press := key.NewSpecialEvent(key.KeyDown, key.ModCtrl)
	repeat := press.WithAction(key.ActionRepeat)

	a, err := Interpret(press, false)
	if err != nil {
		t.Fatalf("Interpret(press) error: %v", err)
	}
	b, err := Interpret(repeat, false)
	if err != nil {
		t.Fatalf("Interpret(repeat) error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("repeat output %q differs from press output %q", b, a)
	}
}

func TestInterpretDeterminism(t *testing.T) {
	ev := key.NewSpecialEvent(key.KeyF5, key.ModShift|key.ModCtrl)
	first, err := Interpret(ev, true)
	if err != nil {
		t.Fatalf("Interpret error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := Interpret(ev, true)
		if err != nil {
			t.Fatalf("Interpret error: %v", err)
		}
		if !bytes.Equal(got, first) {
			t.Fatalf("Interpret not deterministic: %q then %q", first, got)
		}
	}
}

func TestInterpretErrors(t *testing.T) {
	// Keys with no capability entry.
	for _, k := range []key.Key{key.KeyEnter, key.KeyTab, key.KeyEscape, key.KeyRune} {
		if _, err := Interpret(key.NewSpecialEvent(k, key.ModNone), false); !errors.Is(err, ErrUnsupportedCapability) {
			t.Errorf("Interpret(%s) error = %v, want ErrUnsupportedCapability", k, err)
		}
	}

	// Modifier sets outside the documented eight.
	for _, mods := range []key.Modifier{key.ModMeta, key.ModMeta | key.ModCtrl} {
		if _, err := Interpret(key.NewSpecialEvent(key.KeyUp, mods), false); !errors.Is(err, ErrUnsupportedModifierCombination) {
			t.Errorf("Interpret(Up+%s) error = %v, want ErrUnsupportedModifierCombination", mods, err)
		}
	}
}
