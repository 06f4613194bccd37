package editor

import (
	"path/filepath"
	"strings"

	"github.com/dshills/vigor/internal/engine/buffer"
	"github.com/dshills/vigor/internal/engine/cursor"
	"github.com/dshills/vigor/internal/input/key"
	"github.com/dshills/vigor/internal/renderer/highlight"
)

// handleCommand feeds one key to the command line widget and, when the
// widget confirms a line, executes it. Leaving the widget for any
// reason returns the editor to normal mode.
func (e *Editor) handleCommand(ev key.Event) {
	line, ok := e.cmdline.HandleKey(ev)
	if ok {
		e.execute(line)
	}
	if !e.cmdline.IsActive() {
		e.mode = ModeNormal
	}
}

// execute runs one confirmed ex command. Unknown commands are ignored.
func (e *Editor) execute(line string) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return
	}

	switch cmd, args := fields[0], fields[1:]; cmd {
	case "q", "quit":
		e.quit = true

	case "w", "write":
		if len(args) > 0 {
			e.saveAs(args[0])
			return
		}
		e.save()

	case "e", "edit":
		if len(args) > 0 {
			e.load(args[0])
		}
	}
}

// save writes the buffer back to the file it is named after. A scratch
// buffer has no backing file and the command is a no-op.
func (e *Editor) save() {
	name := e.buf.Name()
	if name == "" || name == buffer.ScratchName {
		return
	}
	if err := e.fio.Write(name, e.buf.Text()); err != nil {
		e.statusMsg = "could not write " + name
	}
}

// saveAs writes the buffer to path and, on success, renames the buffer
// after it so later :w invocations target the same file.
func (e *Editor) saveAs(path string) {
	if err := e.fio.Write(path, e.buf.Text()); err != nil {
		e.statusMsg = "could not write " + path
		return
	}
	e.buf.SetName(filepath.Base(path))
}

// load replaces the buffer with the file at path, resetting cursor,
// viewport and highlighter. A read failure degrades to an empty buffer.
func (e *Editor) load(path string) {
	name := filepath.Base(path)

	text, err := e.fio.Read(path)
	if err != nil {
		e.buf = buffer.New(name, "")
		e.statusMsg = "could not read " + path
	} else {
		e.buf = buffer.New(name, text)
	}

	e.cur = cursor.Origin()
	e.view.Reset()
	e.resolver = highlight.ForPath(path, e.theme)
	e.hlCache = nil
	if e.resolver != nil {
		e.hlCache = highlight.NewLineCache(e.resolver)
	}
}
