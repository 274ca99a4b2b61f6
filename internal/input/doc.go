// Package input wires key events into a session's program input stream.
//
// The Handler is the integration point: it receives key events from a
// platform backend, reads the session's cursor key mode once per event,
// asks the encoder for the matching escape sequence, and writes the
// bytes to the program side of the session. Events the encoder cannot
// express (capabilities with no composition rule, modifier chords
// outside the xterm set) are dropped whole; a partial sequence is never
// written.
package input
