package editor

// deleteCharAtCursor removes the rune under the cursor. The cursor
// does not move; at the very end of the buffer there is nothing under
// it and the edit is a no-op.
func (e *Editor) deleteCharAtCursor() {
	e.buf.DeleteRune(e.cur.Row, e.cur.Col)
}

// deleteCurrentLine removes the cursor's line including its trailing
// newline, then clamps the cursor to a valid position in the shrunken
// buffer.
func (e *Editor) deleteCurrentLine() {
	if !e.buf.DeleteLine(e.cur.Row) {
		return
	}
	if last := e.buf.LineCount() - 1; e.cur.Row > last {
		e.cur.Row = last
	}
	e.cur.Col = 0
}
