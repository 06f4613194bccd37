package editor

import (
	"testing"

	"github.com/dshills/vigor/internal/input/key"
)

func typeLine(c *CommandLine, s string) {
	for _, r := range s {
		c.HandleKey(key.Rune(r))
	}
}

func TestCommandLineTyping(t *testing.T) {
	c := NewCommandLine()
	c.Activate()
	typeLine(c, "write")

	if got := c.Text(); got != "write" {
		t.Errorf("text = %q, want write", got)
	}
	if got := c.Cursor(); got != 5 {
		t.Errorf("cursor = %d, want 5", got)
	}
}

func TestCommandLineEnterConfirms(t *testing.T) {
	c := NewCommandLine()
	c.Activate()
	typeLine(c, "q")

	line, ok := c.HandleKey(key.Special(key.KeyEnter))
	if !ok || line != "q" {
		t.Errorf("HandleKey(enter) = (%q, %v), want (q, true)", line, ok)
	}
	if c.IsActive() {
		t.Error("widget should deactivate on enter")
	}
	if c.Text() != "" {
		t.Errorf("text = %q, want cleared", c.Text())
	}
}

func TestCommandLineEscapeDiscards(t *testing.T) {
	c := NewCommandLine()
	c.Activate()
	typeLine(c, "q")

	if _, ok := c.HandleKey(key.Special(key.KeyEscape)); ok {
		t.Error("escape should not confirm")
	}
	if c.IsActive() {
		t.Error("widget should deactivate on escape")
	}
}

func TestCommandLineEditing(t *testing.T) {
	c := NewCommandLine()
	c.Activate()
	typeLine(c, "wq")

	c.HandleKey(key.Special(key.KeyLeft))
	c.HandleKey(key.Special(key.KeyBackspace))
	if got := c.Text(); got != "q" {
		t.Errorf("text = %q, want q", got)
	}

	c.HandleKey(key.Special(key.KeyEnd))
	typeLine(c, "uit")
	if got := c.Text(); got != "quit" {
		t.Errorf("text = %q, want quit", got)
	}

	c.HandleKey(key.Special(key.KeyHome))
	c.HandleKey(key.Special(key.KeyDelete))
	if got := c.Text(); got != "uit" {
		t.Errorf("text = %q, want uit", got)
	}
}

func TestCommandLineInsertMidLine(t *testing.T) {
	c := NewCommandLine()
	c.Activate()
	typeLine(c, "wfile")
	for i := 0; i < 4; i++ {
		c.HandleKey(key.Special(key.KeyLeft))
	}
	c.HandleKey(key.Rune(' '))

	if got := c.Text(); got != "w file" {
		t.Errorf("text = %q, want \"w file\"", got)
	}
}

func TestCommandLineActivateClearsState(t *testing.T) {
	c := NewCommandLine()
	c.Activate()
	typeLine(c, "stale")
	c.Deactivate()

	c.Activate()
	if c.Text() != "" || c.Cursor() != 0 {
		t.Errorf("text = %q cursor = %d, want empty", c.Text(), c.Cursor())
	}
}
