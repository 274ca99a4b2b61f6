// Package backend abstracts the platform input source that produces
// key events. The only shipped implementation reads from the hosting
// terminal via tcell, mapping its event model 1:1 onto the key package.
package backend

import "github.com/termforge/keywire/internal/input/key"

// Backend provides key events from a platform input source.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// PollKey blocks until the next key event. The second result is
	// false once the backend has been shut down.
	PollKey() (key.Event, bool)
}
