package editor

import (
	"errors"
	"testing"

	"github.com/dshills/vigor/internal/input/key"
)

// pressCommand enters command mode, types line and confirms it,
// returning HandleKey's quit result for the confirming Enter.
func pressCommand(e *Editor, line string) bool {
	e.HandleKey(key.Rune(':'))
	for _, r := range line {
		e.HandleKey(key.Rune(r))
	}
	return e.HandleKey(key.Special(key.KeyEnter))
}

func TestCommandQuit(t *testing.T) {
	for _, cmd := range []string{"q", "quit"} {
		t.Run(cmd, func(t *testing.T) {
			e := newTestEditor(t, "")
			if !pressCommand(e, cmd) {
				t.Errorf(":%s should request termination", cmd)
			}
		})
	}
}

func TestCommandEscapeCancels(t *testing.T) {
	e := newTestEditor(t, "")
	e.HandleKey(key.Rune(':'))
	press(e, "q")
	if quit := e.HandleKey(key.Special(key.KeyEscape)); quit {
		t.Error("escape should not execute the pending command")
	}
	if e.Mode() != ModeNormal {
		t.Errorf("mode = %v, want normal after escape", e.Mode())
	}
}

func TestCommandWriteScratchBufferIsNoop(t *testing.T) {
	fs := newFakeFS()
	e := New(WithFileIO(fs))
	e.buf.Replace("hello")

	pressCommand(e, "w")
	if len(fs.files) != 0 {
		t.Errorf("files = %v, scratch buffer should not be written", fs.files)
	}
}

func TestCommandWriteNamedBuffer(t *testing.T) {
	fs := newFakeFS()
	fs.files["notes.txt"] = "old"
	e := New(WithFileIO(fs))
	e.Open("notes.txt")
	press(e, "i")
	press(e, "!")
	e.HandleKey(key.Special(key.KeyEscape))

	pressCommand(e, "w")
	if got := fs.files["notes.txt"]; got != "!old" {
		t.Errorf("written = %q, want !old", got)
	}
}

func TestCommandWriteWithPathRenamesBuffer(t *testing.T) {
	fs := newFakeFS()
	e := New(WithFileIO(fs))
	e.buf.Replace("hello")

	pressCommand(e, "w /tmp/out.txt")
	if got := fs.files["/tmp/out.txt"]; got != "hello" {
		t.Errorf("written = %q, want hello", got)
	}
	if got := e.Buffer().Name(); got != "out.txt" {
		t.Errorf("buffer name = %q, want out.txt", got)
	}
}

func TestCommandWriteFailureSetsStatus(t *testing.T) {
	fs := newFakeFS()
	fs.writeErr = errors.New("disk full")
	e := New(WithFileIO(fs))
	e.buf.Replace("hello")

	pressCommand(e, "w /tmp/out.txt")
	if e.StatusMessage() == "" {
		t.Error("expected a status message after a failed write")
	}
	if got := e.Buffer().Name(); got == "out.txt" {
		t.Error("buffer should not be renamed after a failed write")
	}
}

func TestCommandEditLoadsFile(t *testing.T) {
	fs := newFakeFS()
	fs.files["other.txt"] = "second\nfile"
	e := New(WithFileIO(fs))
	e.buf.Replace("first")
	press(e, "l")

	pressCommand(e, "e other.txt")
	if got := e.Buffer().Text(); got != "second\nfile" {
		t.Errorf("text = %q", got)
	}
	if got := e.Cursor(); got.Row != 0 || got.Col != 0 {
		t.Errorf("cursor = %v, want origin after load", got)
	}
	if e.Mode() != ModeNormal {
		t.Errorf("mode = %v, want normal", e.Mode())
	}
}

func TestCommandEditMissingFileDegrades(t *testing.T) {
	e := New(WithFileIO(newFakeFS()))
	pressCommand(e, "e missing.txt")

	if got := e.Buffer().Name(); got != "missing.txt" {
		t.Errorf("buffer name = %q", got)
	}
	if e.Buffer().Len() != 0 {
		t.Errorf("buffer len = %d, want 0", e.Buffer().Len())
	}
	if e.StatusMessage() == "" {
		t.Error("expected a status message")
	}
}

func TestCommandUnknownIsIgnored(t *testing.T) {
	e := newTestEditor(t, "hello")
	if quit := pressCommand(e, "frobnicate"); quit {
		t.Error("unknown command should not quit")
	}
	if got := e.Buffer().Text(); got != "hello" {
		t.Errorf("text = %q, want untouched", got)
	}
	if e.Mode() != ModeNormal {
		t.Errorf("mode = %v, want normal", e.Mode())
	}
}

func TestCommandEmptyLineIsIgnored(t *testing.T) {
	e := newTestEditor(t, "hello")
	if quit := pressCommand(e, "   "); quit {
		t.Error("blank command should not quit")
	}
}
