package editor

import (
	"github.com/dshills/vigor/internal/input/key"
)

// handleInsert processes one insert-mode keypress: printable runes and
// Enter edit the buffer at the cursor, Backspace and Delete remove
// around it, the arrow keys reuse the normal-mode motions, and Escape
// returns to normal mode.
func (e *Editor) handleInsert(ev key.Event) {
	switch ev.Key {
	case key.KeyEscape:
		e.mode = ModeNormal
		return

	case key.KeyEnter:
		if e.buf.InsertNewline(e.cur.Row, e.cur.Col) {
			e.cur.Row++
			e.cur.Col = 0
		}
		return

	case key.KeyTab:
		// Tabs are expanded to spaces at the configured width.
		for i := 0; i < e.tabWidth; i++ {
			if e.buf.InsertRune(e.cur.Row, e.cur.Col, ' ') {
				e.cur.Col++
			}
		}
		return

	case key.KeyBackspace:
		e.backspace()
		return

	case key.KeyDelete:
		e.buf.DeleteRune(e.cur.Row, e.cur.Col)
		return

	case key.KeyLeft:
		e.moveLeft()
		return
	case key.KeyRight:
		e.moveRight()
		return
	case key.KeyUp:
		e.moveUp()
		return
	case key.KeyDown:
		e.moveDown()
		return
	}

	if ev.IsRune() {
		if e.buf.InsertRune(e.cur.Row, e.cur.Col, ev.Rune) {
			e.cur.Col++
		}
	}
}

// backspace deletes the rune before the cursor. At column zero it
// deletes the previous line's newline, joining the two lines and
// leaving the cursor at the join point.
func (e *Editor) backspace() {
	if e.cur.Col > 0 {
		if _, ok := e.buf.DeleteRune(e.cur.Row, e.cur.Col-1); ok {
			e.cur.Col--
		}
		return
	}
	if e.cur.Row == 0 {
		return
	}
	prevLen := e.buf.LineRuneLen(e.cur.Row - 1)
	if _, ok := e.buf.DeleteRune(e.cur.Row-1, prevLen); ok {
		e.cur.Row--
		e.cur.Col = prevLen
	}
}
