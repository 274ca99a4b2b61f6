// Package mode tracks the DEC private modes a session's input path
// consults, DECCKM first among them. The machine is mutated by the
// escape processor (DECSET/DECRST) and read by the key encoder; it is
// the single piece of shared state in the input pipeline.
package mode

import "sync"

// DEC private mode numbers handled by the machine.
const (
	// CursorKeys is DECCKM: cursor keys send SS3 sequences when set,
	// CSI sequences when reset.
	CursorKeys = 1

	// ApplicationKeypad is DECNKM: the numeric keypad sends application
	// sequences when set.
	ApplicationKeypad = 66

	// BracketedPaste wraps pasted text in ESC [ 200~ / ESC [ 201~.
	BracketedPaste = 2004
)

// ChangeCallback is notified after a mode flag changes value.
type ChangeCallback func(mode int, enabled bool)

// Machine holds the private-mode flags for one session. All methods are
// safe for concurrent use; the key encoder reads CursorKeyMode once per
// event while the escape processor writes.
type Machine struct {
	mu        sync.RWMutex
	flags     map[int]bool
	saved     map[int]bool
	callbacks []ChangeCallback
}

// NewMachine creates a machine with all modes reset.
func NewMachine() *Machine {
	return &Machine{
		flags: make(map[int]bool),
		saved: make(map[int]bool),
	}
}

// Set enables the given modes (DECSET).
func (m *Machine) Set(modes ...int) {
	m.apply(true, modes)
}

// Reset disables the given modes (DECRST).
func (m *Machine) Reset(modes ...int) {
	m.apply(false, modes)
}

func (m *Machine) apply(enabled bool, modes []int) {
	type change struct {
		mode    int
		enabled bool
	}

	m.mu.Lock()
	var changed []change
	for _, mode := range modes {
		if m.flags[mode] == enabled {
			continue
		}
		m.flags[mode] = enabled
		changed = append(changed, change{mode, enabled})
	}
	callbacks := m.callbacks
	m.mu.Unlock()

	for _, c := range changed {
		for _, cb := range callbacks {
			cb(c.mode, c.enabled)
		}
	}
}

// IsSet returns the current value of a mode flag.
func (m *Machine) IsSet(mode int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[mode]
}

// Save records the current value of the given modes (XTSAVE).
func (m *Machine) Save(modes ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mode := range modes {
		m.saved[mode] = m.flags[mode]
	}
}

// Restore reinstates the saved value of the given modes (XTRESTORE).
// Modes never saved restore to reset.
func (m *Machine) Restore(modes ...int) {
	m.mu.Lock()
	saved := make([]bool, len(modes))
	for i, mode := range modes {
		saved[i] = m.saved[mode]
	}
	m.mu.Unlock()

	for i, mode := range modes {
		if saved[i] {
			m.Set(mode)
		} else {
			m.Reset(mode)
		}
	}
}

// CursorKeyMode returns true when DECCKM is set (application mode).
func (m *Machine) CursorKeyMode() bool {
	return m.IsSet(CursorKeys)
}

// OnChange registers a callback invoked after any mode flag changes.
func (m *Machine) OnChange(cb ChangeCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}
