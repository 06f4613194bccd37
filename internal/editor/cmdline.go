package editor

import (
	"github.com/dshills/vigor/internal/input/key"
)

// CommandLine is the ex-style command input widget. It owns its own text
// and cursor, consumes one key at a time while active, and yields the
// confirmed line on Enter (nothing on Escape).
type CommandLine struct {
	text   []rune
	cursor int
	active bool
}

// NewCommandLine creates an inactive command line.
func NewCommandLine() *CommandLine {
	return &CommandLine{}
}

// Activate clears the widget and starts capturing keys.
func (c *CommandLine) Activate() {
	c.text = c.text[:0]
	c.cursor = 0
	c.active = true
}

// Deactivate stops capturing keys.
func (c *CommandLine) Deactivate() {
	c.active = false
}

// IsActive reports whether the widget is capturing keys.
func (c *CommandLine) IsActive() bool {
	return c.active
}

// Text returns the current input.
func (c *CommandLine) Text() string {
	return string(c.text)
}

// Cursor returns the cursor position within the input, in characters.
func (c *CommandLine) Cursor() int {
	return c.cursor
}

// HandleKey consumes one key. When Enter confirms the line it is
// returned with ok=true and the widget deactivates; Escape deactivates
// with ok=false. All other keys edit the widget's text.
func (c *CommandLine) HandleKey(ev key.Event) (line string, ok bool) {
	switch ev.Key {
	case key.KeyEscape:
		c.Deactivate()

	case key.KeyEnter:
		line = string(c.text)
		c.text = c.text[:0]
		c.cursor = 0
		c.Deactivate()
		return line, true

	case key.KeyBackspace:
		if c.cursor > 0 {
			c.cursor--
			c.text = append(c.text[:c.cursor], c.text[c.cursor+1:]...)
		}

	case key.KeyDelete:
		if c.cursor < len(c.text) {
			c.text = append(c.text[:c.cursor], c.text[c.cursor+1:]...)
		}

	case key.KeyLeft:
		if c.cursor > 0 {
			c.cursor--
		}

	case key.KeyRight:
		if c.cursor < len(c.text) {
			c.cursor++
		}

	case key.KeyHome:
		c.cursor = 0

	case key.KeyEnd:
		c.cursor = len(c.text)

	case key.KeyRune:
		c.text = append(c.text, 0)
		copy(c.text[c.cursor+1:], c.text[c.cursor:])
		c.text[c.cursor] = ev.Rune
		c.cursor++
	}

	return "", false
}
