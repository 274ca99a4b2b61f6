// Package main is the keywire demo and encoding tool.
//
// Without flags it opens a full-screen viewer showing, for every key
// pressed, the byte sequence a terminal emulator would write to the
// running program. With -encode it translates a single key
// specification and exits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/termforge/keywire/internal/input"
	"github.com/termforge/keywire/internal/input/backend"
	"github.com/termforge/keywire/internal/input/key"
	"github.com/termforge/keywire/internal/vt/keyenc"
	"github.com/termforge/keywire/internal/vt/mode"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	encodeSpec  string
	application bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 0
	}

	if opts.encodeSpec != "" {
		return runEncode(opts)
	}
	return runViewer()
}

func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.encodeSpec, "encode", "", "Encode a single key spec (e.g. \"Ctrl+F5\" or \"<C-S-Up>\") and exit")
	flag.StringVar(&opts.encodeSpec, "e", "", "Encode a single key spec (shorthand)")
	flag.BoolVar(&opts.application, "app", false, "Encode with DECCKM set (application cursor key mode)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("keywire %s (%s)\n", version, commit)
		return opts, false
	}
	return opts, true
}

// runEncode translates one key specification and prints the sequence.
func runEncode(opts options) int {
	ev, err := key.Parse(opts.encodeSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	seq, err := keyenc.Interpret(ev, opts.application)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("%s\t%q\n", ev, seq)
	return 0
}

// runViewer opens the interactive key viewer.
func runViewer() int {
	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	modes := mode.NewMachine()

	var lastSeq []byte
	var lastDrop string
	handler, err := input.NewHandler(input.Config{
		Output: writerFunc(func(p []byte) (int, error) {
			lastSeq = append(lastSeq[:0], p...)
			return len(p), nil
		}),
		OnDrop: func(ev key.Event, err error) {
			lastDrop = fmt.Sprintf("%s dropped: %v", ev, err)
		},
	}, modes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen := term.Screen()
	var lastKey key.Event
	for {
		draw(screen, modes, handler, lastKey, lastSeq, lastDrop)

		ev, ok := term.PollKey()
		if !ok {
			return 0
		}

		// Viewer controls: F10 toggles DECCKM, Esc quits. Everything
		// still flows through the handler so the toggle key's own
		// encoding shows up too.
		if ev.Matches("<Esc>") || ev.Matches("Ctrl+c") {
			return 0
		}
		if ev.Matches("F10") {
			if modes.CursorKeyMode() {
				modes.Reset(mode.CursorKeys)
			} else {
				modes.Set(mode.CursorKeys)
			}
		}

		lastKey = ev
		lastSeq = lastSeq[:0]
		lastDrop = ""
		if err := handler.HandleKey(ev); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
}

// writerFunc adapts a function to io.Writer.
type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}

func draw(screen tcell.Screen, modes *mode.Machine, handler *input.Handler, lastKey key.Event, lastSeq []byte, lastDrop string) {
	screen.Clear()

	style := tcell.StyleDefault
	bold := style.Bold(true)

	drawText(screen, 0, 0, bold, "keywire key viewer")
	drawText(screen, 0, 1, style, "F10 toggles cursor key mode, Esc quits")

	cursorMode := "normal (CSI)"
	if modes.CursorKeyMode() {
		cursorMode = "application (SS3)"
	}
	drawText(screen, 0, 3, style, fmt.Sprintf("cursor key mode: %s", cursorMode))

	if lastKey.Key != key.KeyNone || lastKey.Rune != 0 {
		drawText(screen, 0, 5, style, fmt.Sprintf("key:   %s", lastKey))
		if len(lastSeq) > 0 {
			drawText(screen, 0, 6, style, fmt.Sprintf("bytes: %q", lastSeq))
		} else if lastDrop != "" {
			drawText(screen, 0, 6, style, lastDrop)
		} else {
			drawText(screen, 0, 6, style, "bytes: (none)")
		}
	}

	snap := handler.Metrics().Snapshot()
	drawText(screen, 0, 8, style, fmt.Sprintf("events: %d  bytes: %d  dropped: %d",
		snap.KeyEventsTotal, snap.BytesWritten, snap.DroppedEvents))

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
