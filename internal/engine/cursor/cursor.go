// Package cursor provides the editor's cursor position type.
package cursor

import "fmt"

// Cursor is a (row, column) position in the buffer. Both axes are
// 0-indexed and the column is measured in characters, not bytes; the
// buffer converts to byte offsets at edit time.
//
// The column is not range-restricted structurally: vertical motion may
// leave it past a shorter line's end, and consumers clamp where needed.
type Cursor struct {
	Row int
	Col int
}

// Origin returns a cursor at (0, 0).
func Origin() Cursor {
	return Cursor{}
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d:%d)", c.Row, c.Col)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// ClampCol returns the cursor with its column clamped to [0, maxCol].
func (c Cursor) ClampCol(maxCol int) Cursor {
	if maxCol < 0 {
		maxCol = 0
	}
	if c.Col > maxCol {
		c.Col = maxCol
	}
	if c.Col < 0 {
		c.Col = 0
	}
	return c
}

// ClampRow returns the cursor with its row clamped to [0, maxRow].
func (c Cursor) ClampRow(maxRow int) Cursor {
	if maxRow < 0 {
		maxRow = 0
	}
	if c.Row > maxRow {
		c.Row = maxRow
	}
	if c.Row < 0 {
		c.Row = 0
	}
	return c
}
