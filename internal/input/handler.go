package input

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/termforge/keywire/internal/input/key"
	"github.com/termforge/keywire/internal/vt/keyenc"
	"github.com/termforge/keywire/internal/vt/mode"
)

// Config configures the input handler.
type Config struct {
	// Output receives the encoded byte sequences (the program side of
	// the session's channel). Required.
	Output io.Writer

	// OnDrop is called when an event is dropped because it has no
	// valid encoding. Optional.
	OnDrop func(ev key.Event, err error)

	// EnableMetrics enables event counters (default: true).
	EnableMetrics *bool
}

// Handler translates key events for one session.
type Handler struct {
	mu sync.Mutex

	out     io.Writer
	modes   *mode.Machine
	onDrop  func(ev key.Event, err error)
	metrics *Metrics
}

// NewHandler creates a handler bound to a session's mode machine.
func NewHandler(config Config, modes *mode.Machine) (*Handler, error) {
	if config.Output == nil {
		return nil, errors.New("input: Config.Output is required")
	}
	if modes == nil {
		return nil, errors.New("input: mode machine is required")
	}

	h := &Handler{
		out:     config.Output,
		modes:   modes,
		onDrop:  config.OnDrop,
		metrics: NewMetrics(),
	}
	if config.EnableMetrics != nil {
		h.metrics.SetEnabled(*config.EnableMetrics)
	}
	return h, nil
}

// HandleKey translates one key event and writes the resulting bytes.
//
// Events without a valid encoding are dropped silently: the counter is
// bumped, the drop callback (if any) runs, and HandleKey returns nil.
// Only write failures are reported as errors. Session mode state is
// never touched here.
func (h *Handler) HandleKey(ev key.Event) error {
	h.metrics.RecordKeyEvent()

	// Read the shared flag once; the encoder itself is pure.
	cursorKeyMode := h.modes.CursorKeyMode()

	seq, err := keyenc.Interpret(ev, cursorKeyMode)
	if err != nil {
		h.drop(ev, err)
		return nil
	}
	if len(seq) == 0 {
		// Release events encode to nothing.
		return nil
	}

	h.mu.Lock()
	_, werr := h.out.Write(seq)
	h.mu.Unlock()
	if werr != nil {
		return fmt.Errorf("input: write key sequence: %w", werr)
	}

	h.metrics.RecordBytesWritten(uint64(len(seq)))
	return nil
}

func (h *Handler) drop(ev key.Event, err error) {
	h.metrics.RecordDroppedEvent()
	if h.onDrop != nil {
		h.onDrop(ev, err)
	}
}

// Metrics returns the handler's metrics tracker.
func (h *Handler) Metrics() *Metrics {
	return h.metrics
}
