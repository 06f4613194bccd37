// Package backend connects the cell grid renderer to a real terminal
// through tcell. It owns the raw-mode screen for the life of a session
// and converts between the renderer's cells and tcell's types.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vigor/internal/input/key"
	"github.com/dshills/vigor/internal/renderer"
)

// CursorStyle defines how the hardware cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// EventType discriminates terminal events.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event is one terminal event: a keypress or a resize.
type Event struct {
	Type EventType

	// Key holds the keypress for EventKey.
	Key key.Event

	// Width and Height hold the new size for EventResize.
	Width  int
	Height int
}

// Terminal drives a tcell screen. Init switches the terminal into raw
// mode and the alternate screen; Fini restores it. Every Init must be
// paired with a Fini, normally via defer, so a crash or quit never
// leaves the shell in raw mode.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a backend on the process's real terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalScreen creates a backend on a supplied screen, used in
// tests with tcell's simulation screen.
func NewTerminalScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init acquires the terminal: raw mode, alternate screen, cleared.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Fini releases the terminal, restoring the shell's screen and modes.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// Apply stages a batch of cell writes. Nothing reaches the terminal
// until Show.
func (t *Terminal) Apply(writes []renderer.CellWrite) {
	for _, w := range writes {
		if w.Cell.IsContinuation() {
			continue
		}
		t.screen.SetContent(w.X, w.Y, w.Cell.Rune, nil, convertStyle(w.Cell.Style))
	}
}

// Show flushes staged writes to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// ShowCursor positions the hardware cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

// HideCursor hides the hardware cursor.
func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

// SetCursorStyle changes the hardware cursor shape.
func (t *Terminal) SetCursorStyle(style CursorStyle) {
	switch style {
	case CursorUnderline:
		t.screen.SetCursorStyle(tcell.CursorStyleBlinkingUnderline)
	case CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleBlinkingBar)
	default:
		t.screen.SetCursorStyle(tcell.CursorStyleBlinkingBlock)
	}
}

// Sync forces a full repaint, used after terminal resizes.
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// Beep sounds the terminal bell.
func (t *Terminal) Beep() {
	_ = t.screen.Beep()
}

// PollEvent blocks until the next key or resize event. Events the
// editor does not handle come back as EventNone.
func (t *Terminal) PollEvent() Event {
	switch ev := t.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: convertKey(ev)}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}

// convertStyle converts a renderer style to tcell's.
func convertStyle(s renderer.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	if s.Attributes.Has(renderer.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(renderer.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(renderer.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(renderer.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(renderer.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

func convertColor(c renderer.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertKey converts a tcell key event to the editor's key type.
// Unmapped special keys become KeyNone, which every mode ignores.
func convertKey(ev *tcell.EventKey) key.Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return key.Rune(ev.Rune())
	case tcell.KeyEscape:
		return key.Special(key.KeyEscape)
	case tcell.KeyEnter:
		return key.Special(key.KeyEnter)
	case tcell.KeyTab:
		return key.Special(key.KeyTab)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Special(key.KeyBackspace)
	case tcell.KeyDelete:
		return key.Special(key.KeyDelete)
	case tcell.KeyHome:
		return key.Special(key.KeyHome)
	case tcell.KeyEnd:
		return key.Special(key.KeyEnd)
	case tcell.KeyUp:
		return key.Special(key.KeyUp)
	case tcell.KeyDown:
		return key.Special(key.KeyDown)
	case tcell.KeyLeft:
		return key.Special(key.KeyLeft)
	case tcell.KeyRight:
		return key.Special(key.KeyRight)
	default:
		return key.Special(key.KeyNone)
	}
}
