// Package key defines keyboard events as delivered to the editor.
// The terminal backend translates its native events into this form so the
// dispatch code has no dependency on the terminal library.
package key

import "fmt"

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Event's Rune field.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyRune:
		return "rune"
	default:
		return "unknown"
	}
}

// Event is a single keypress.
type Event struct {
	// Key identifies the key. KeyRune for printable characters.
	Key Key

	// Rune holds the character for KeyRune events.
	Rune rune
}

// Rune builds a character key event.
func Rune(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Special builds a non-character key event.
func Special(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true for printable character events.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// String returns a human-readable representation of the event.
func (e Event) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("%q", e.Rune)
	}
	return e.Key.String()
}
