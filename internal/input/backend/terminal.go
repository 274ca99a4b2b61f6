package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/termforge/keywire/internal/input/key"
)

// Terminal implements Backend on top of a tcell screen.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal backend for the hosting terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init puts the terminal into raw mode and starts event delivery.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Shutdown restores the terminal state.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Screen exposes the underlying tcell screen for callers that also
// draw (the keywire demo does).
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// PollKey blocks until the next key event, skipping events that carry
// no key (resize, mouse, paste markers). Returns false after Shutdown.
func (t *Terminal) PollKey() (key.Event, bool) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return key.Event{}, false
		}
		if kev, ok := ev.(*tcell.EventKey); ok {
			if converted, ok := eventFromTcell(kev); ok {
				return converted, true
			}
		}
	}
}
