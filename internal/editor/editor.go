package editor

import (
	"github.com/dshills/vigor/internal/engine/buffer"
	"github.com/dshills/vigor/internal/engine/cursor"
	"github.com/dshills/vigor/internal/input/key"
	"github.com/dshills/vigor/internal/renderer/gutter"
	"github.com/dshills/vigor/internal/renderer/highlight"
	"github.com/dshills/vigor/internal/renderer/viewport"
)

// reservedRows is the screen space not used for buffer content: the
// status line plus the command overlay row.
const reservedRows = 2

// Editor is the modal state machine. It owns the buffer, cursor, pending
// key state and viewport, and drives buffer edits from keystrokes.
//
// The editor is single-threaded: the surrounding loop applies
// exactly one keypress, then renders one frame. No editor method may be
// called concurrently.
type Editor struct {
	buf      *buffer.Buffer
	cur      cursor.Cursor
	mode     Mode
	count    countState
	pendingD bool
	view     *viewport.Viewport
	cmdline  *CommandLine
	theme    *highlight.Theme
	resolver highlight.Resolver
	hlCache  *highlight.LineCache
	fio      FileIO

	// Terminal size, updated by the shell on resize events.
	width  int
	height int

	// Display settings from the user configuration.
	tabWidth        int
	showLineNumbers bool

	// statusMsg briefly surfaces a failed save or load on the status
	// line; cleared by the next keypress.
	statusMsg string

	quit bool
}

// Option is a functional option for configuring an Editor.
type Option func(*Editor)

// WithFileIO replaces the file collaborator, mainly for tests.
func WithFileIO(fio FileIO) Option {
	return func(e *Editor) {
		e.fio = fio
	}
}

// WithTheme sets the highlight theme.
func WithTheme(theme *highlight.Theme) Option {
	return func(e *Editor) {
		e.theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(e *Editor) {
		e.width = width
		e.height = height
	}
}

// WithTabWidth sets how many spaces the tab key inserts.
func WithTabWidth(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.tabWidth = n
		}
	}
}

// WithLineNumbers toggles the gutter.
func WithLineNumbers(show bool) Option {
	return func(e *Editor) {
		e.showLineNumbers = show
	}
}

// New creates an editor with an empty scratch buffer.
func New(opts ...Option) *Editor {
	e := &Editor{
		mode:            ModeNormal,
		view:            viewport.New(),
		cmdline:         NewCommandLine(),
		fio:             OSFileIO{},
		width:           80,
		height:          24,
		tabWidth:        4,
		showLineNumbers: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.theme == nil {
		e.theme = highlight.DefaultTheme()
	}
	e.buf = buffer.New(buffer.ScratchName, "")
	return e
}

// Open loads a file into a fresh buffer, replacing the current one and
// resetting the cursor and viewport. A load failure degrades to an empty
// buffer named after the path; the session never terminates on it.
func (e *Editor) Open(path string) {
	e.load(path)
}

// Buffer returns the current buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() cursor.Cursor {
	return e.cur
}

// Mode returns the active mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Viewport returns the viewport.
func (e *Editor) Viewport() *viewport.Viewport {
	return e.view
}

// CommandLine returns the command line widget.
func (e *Editor) CommandLine() *CommandLine {
	return e.cmdline
}

// Theme returns the highlight theme.
func (e *Editor) Theme() *highlight.Theme {
	return e.theme
}

// Resolver returns the style resolver for the current buffer, or nil
// when the buffer has no highlighter.
func (e *Editor) Resolver() highlight.Resolver {
	return e.resolver
}

// HighlightSpans returns the style spans for one buffer row, memoized
// across frames. The cache is keyed on the buffer's identity and
// revision, so rows are only re-tokenized after an edit that changed
// their text. Returns nil when the buffer has no highlighter.
func (e *Editor) HighlightSpans(row int, line string) []highlight.Span {
	if e.hlCache == nil {
		return nil
	}
	return e.hlCache.HighlightLine(e.buf.ID(), row, uint64(e.buf.RevisionID()), line)
}

// StatusMessage returns the transient failure message, if any.
func (e *Editor) StatusMessage() string {
	return e.statusMsg
}

// SetStatusMessage places a transient message on the status line. Like
// messages raised internally it clears on the next keypress.
func (e *Editor) SetStatusMessage(msg string) {
	e.statusMsg = msg
}

// Size returns the terminal size last recorded by Resize.
func (e *Editor) Size() (width, height int) {
	return e.width, e.height
}

// Resize records a new terminal size.
func (e *Editor) Resize(width, height int) {
	e.width = width
	e.height = height
}

// visibleRows returns the number of buffer rows on screen.
func (e *Editor) visibleRows() int {
	rows := e.height - reservedRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// GutterWidth returns the width of the line number column, zero when
// line numbers are disabled.
func (e *Editor) GutterWidth() int {
	if !e.showLineNumbers {
		return 0
	}
	return gutter.Width(e.buf.LineCount())
}

// visibleCols returns the number of buffer columns on screen (terminal
// width minus the gutter).
func (e *Editor) visibleCols() int {
	cols := e.width - e.GutterWidth()
	if cols < 1 {
		cols = 1
	}
	return cols
}

// EnsureCursorVisible snaps the viewport so the cursor lies within the
// visible rectangle. Called before every render.
func (e *Editor) EnsureCursorVisible() {
	e.view.EnsureVisible(e.cur.Row, e.cur.Col, e.visibleRows(), e.visibleCols())
}

// HandleKey applies one keypress in the active mode.
// Returns true when the editor should terminate.
func (e *Editor) HandleKey(ev key.Event) bool {
	e.statusMsg = ""

	switch e.mode {
	case ModeInsert:
		e.handleInsert(ev)
	case ModeCommand:
		e.handleCommand(ev)
	default:
		e.handleNormal(ev)
	}
	return e.quit
}
