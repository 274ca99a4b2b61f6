// Package key defines the key event model shared by the input pipeline.
//
// The types here mirror what the platform input layer reports, one value
// per physical key:
//
//   - Key: identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: modifier-key bit flags (Shift, Ctrl, Alt, Meta)
//   - Action: press, repeat, or release
//   - Event: a single key event with modifiers, action, and timestamp
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "Up", "F5", "PageDown"
//   - With modifiers: "Ctrl+Up", "Alt+F4", "Ctrl+Shift+End"
//   - Angle-bracket style: "<C-Up>", "<A-F4>", "<C-S-End>"
//
// Parse converts either form into an Event; the keywire CLI uses it for
// its one-shot encode mode.
package key
