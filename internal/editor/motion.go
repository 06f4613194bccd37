package editor

import "unicode"

// Single-step motion primitives. Repeat counts are applied by the normal
// mode dispatcher, which calls these exactly count times.

// moveLeft steps one column left, wrapping to the end of the previous
// line at column 0.
func (e *Editor) moveLeft() {
	if e.cur.Col > 0 {
		e.cur.Col--
		return
	}
	if e.cur.Row > 0 {
		e.cur.Row--
		e.cur.Col = e.buf.LineRuneLen(e.cur.Row)
	}
}

// moveRight steps one column right, wrapping to column 0 of the next
// line at the line end.
func (e *Editor) moveRight() {
	if e.cur.Col < e.buf.LineRuneLen(e.cur.Row) {
		e.cur.Col++
		return
	}
	if e.cur.Row+1 < e.buf.LineCount() {
		e.cur.Row++
		e.cur.Col = 0
	}
}

// moveUp steps one row up, clamping the column to the destination line
// and pulling the viewport along when the cursor leaves the top edge.
func (e *Editor) moveUp() {
	if e.cur.Row == 0 {
		return
	}
	e.cur.Row--
	e.clampCol()
	e.view.ScrollUp(e.cur.Row)
}

// moveDown steps one row down, clamping the column and advancing the
// viewport when the cursor would leave the visible rows.
func (e *Editor) moveDown() {
	if e.cur.Row+1 >= e.buf.LineCount() {
		return
	}
	e.cur.Row++
	e.clampCol()
	e.view.ScrollDown(e.cur.Row, e.visibleRows())
}

// wordForward jumps to the first character of the next word: skip the
// rest of the current word, then any whitespace. At or past the line end
// it wraps to the next line's column 0 and applies the skip once there.
func (e *Editor) wordForward() {
	line := e.lineRunes(e.cur.Row)

	if e.cur.Col >= len(line) {
		if e.cur.Row+1 >= e.buf.LineCount() {
			return
		}
		e.cur.Row++
		e.cur.Col = 0
		line = e.lineRunes(e.cur.Row)
		if len(line) == 0 {
			return
		}
	}

	col := e.cur.Col
	for col < len(line) && !unicode.IsSpace(line[col]) {
		col++
	}
	for col < len(line) && unicode.IsSpace(line[col]) {
		col++
	}
	e.cur.Col = col
}

// wordBackward jumps to the first character of the previous word: skip
// whitespace backward, then the word itself. At column 0 it first wraps
// to the end of the previous line.
func (e *Editor) wordBackward() {
	if e.cur.Col == 0 {
		if e.cur.Row == 0 {
			return
		}
		e.cur.Row--
		e.cur.Col = e.buf.LineRuneLen(e.cur.Row)
	}

	line := e.lineRunes(e.cur.Row)
	i := e.cur.Col - 1
	for i >= 0 && unicode.IsSpace(line[i]) {
		i--
	}
	for i >= 0 && !unicode.IsSpace(line[i]) {
		i--
	}
	e.cur.Col = i + 1
}

// lineStart moves to column 0.
func (e *Editor) lineStart() {
	e.cur.Col = 0
}

// lineEnd moves to the last character column of the current line.
func (e *Editor) lineEnd() {
	n := e.buf.LineRuneLen(e.cur.Row)
	if n > 0 {
		n--
	}
	e.cur.Col = n
}

// bufferTop moves to (0, 0).
func (e *Editor) bufferTop() {
	e.cur.Row = 0
	e.cur.Col = 0
	e.view.ScrollUp(0)
}

// bufferBottom moves to column 0 of the last row.
func (e *Editor) bufferBottom() {
	e.cur.Row = e.buf.LineCount() - 1
	e.cur.Col = 0
	e.view.ScrollDown(e.cur.Row, e.visibleRows())
}

// clampCol keeps the column within the current line's character count.
func (e *Editor) clampCol() {
	if n := e.buf.LineRuneLen(e.cur.Row); e.cur.Col > n {
		e.cur.Col = n
	}
}

// lineRunes returns the current content of a line as runes.
func (e *Editor) lineRunes(row int) []rune {
	line, ok := e.buf.Line(row)
	if !ok {
		return nil
	}
	return []rune(line)
}
