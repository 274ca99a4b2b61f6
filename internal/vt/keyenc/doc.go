// Package keyenc translates special-key events into the byte sequences a
// terminal application reads on its input stream, following the
// xterm convention for cursor, navigation, and function keys.
//
// The pipeline has four small pieces:
//
//   - a capability table mapping each key to its base escape template,
//     with application-mode (DECCKM) variants for the movement keys
//   - a capability parser decomposing a template into structured form
//   - a modifier encoder mapping Shift/Alt/Ctrl sets to the xterm
//     parameter values 2-8
//   - a composer producing the final CSI sequence for modified keys
//
// Interpret ties them together: unmodified keys emit their base template
// verbatim (mode-aware for movement keys), modified keys are always
// reported in CSI form even when their base template uses SS3, and
// release events emit nothing.
//
// Everything here is pure computation over immutable tables; the tables
// are validated once at package init and any malformation is fatal.
package keyenc
