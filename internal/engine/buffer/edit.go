package buffer

import (
	"unicode/utf8"
)

// InsertRune inserts a character at a (row, col) position, patching the
// offset index: every line start after the edited line shifts by the
// character's encoded length. A column past the line end appends.
// Inserting '\n' is routed to InsertNewline so the index stays consistent.
// Returns false if row is out of range.
func (b *Buffer) InsertRune(row, col int, r rune) bool {
	if r == '\n' {
		return b.InsertNewline(row, col)
	}

	pos, ok := b.CharToByte(row, col)
	if !ok {
		return false
	}

	var enc [utf8.UTFMax]byte
	size := utf8.EncodeRune(enc[:], r)
	b.splice(pos, 0, enc[:size])
	b.shiftOffsets(row+1, size)
	b.revisionID = NewRevisionID()
	return true
}

// InsertNewline splits the line at a (row, col) position. The new line's
// start offset is inserted in its sorted slot and every later line start
// shifts by one for the added '\n' byte.
// Returns false if row is out of range.
func (b *Buffer) InsertNewline(row, col int) bool {
	pos, ok := b.CharToByte(row, col)
	if !ok {
		return false
	}

	b.splice(pos, 0, []byte{'\n'})
	b.shiftOffsets(row+1, 1)
	b.lineOffsets = append(b.lineOffsets, 0)
	copy(b.lineOffsets[row+2:], b.lineOffsets[row+1:])
	b.lineOffsets[row+1] = pos + 1
	b.revisionID = NewRevisionID()
	return true
}

// DeleteRune removes the character at a (row, col) position and returns it.
// Deleting the newline at a line's end merges the line with the next one:
// the merged line's offset entry is dropped and every later line start
// shifts by -1. Deleting any other character shifts later line starts by
// its encoded length.
// Returns false if row is out of range or there is no character at the
// position (end of buffer).
func (b *Buffer) DeleteRune(row, col int) (rune, bool) {
	pos, ok := b.CharToByte(row, col)
	if !ok || pos >= len(b.text) {
		return 0, false
	}

	r, size := utf8.DecodeRune(b.text[pos:])
	b.splice(pos, size, nil)

	if r == '\n' {
		// Drop the merged line's entry, then close the one-byte gap.
		copy(b.lineOffsets[row+1:], b.lineOffsets[row+2:])
		b.lineOffsets = b.lineOffsets[:len(b.lineOffsets)-1]
		b.shiftOffsets(row+1, -1)
	} else {
		b.shiftOffsets(row+1, -size)
	}
	b.revisionID = NewRevisionID()
	return r, true
}

// DeleteLine removes a whole line, including its line break. On the last
// line the preceding newline is removed instead so no dangling break is
// left behind. Later line starts shift by the removed byte count. A
// single-line buffer keeps its one line and just loses the content.
// Returns false if row is out of range.
func (b *Buffer) DeleteLine(row int) bool {
	if row < 0 || row >= len(b.lineOffsets) {
		return false
	}

	if len(b.lineOffsets) == 1 {
		b.splice(0, len(b.text), nil)
		b.revisionID = NewRevisionID()
		return true
	}

	var start, end int
	switch {
	case row+1 < len(b.lineOffsets):
		start, end = b.lineOffsets[row], b.lineOffsets[row+1]
	default:
		start, end = b.lineOffsets[row]-1, len(b.text)
	}
	removed := end - start

	b.splice(start, removed, nil)
	copy(b.lineOffsets[row:], b.lineOffsets[row+1:])
	b.lineOffsets = b.lineOffsets[:len(b.lineOffsets)-1]
	b.shiftOffsets(row, -removed)
	b.revisionID = NewRevisionID()
	return true
}

// splice replaces the byte range [pos, pos+del) with ins, in place.
func (b *Buffer) splice(pos, del int, ins []byte) {
	if del == len(ins) {
		copy(b.text[pos:], ins)
		return
	}
	tail := b.text[pos+del:]
	if len(ins) > del {
		b.text = append(b.text, make([]byte, len(ins)-del)...)
		tail = b.text[pos+del : len(b.text)-(len(ins)-del)]
	}
	copy(b.text[pos+len(ins):], tail)
	copy(b.text[pos:], ins)
	if del > len(ins) {
		b.text = b.text[:len(b.text)-(del-len(ins))]
	}
}

// shiftOffsets adds delta to every line-start entry at index from onward.
func (b *Buffer) shiftOffsets(from, delta int) {
	if delta == 0 {
		return
	}
	for i := from; i < len(b.lineOffsets); i++ {
		b.lineOffsets[i] += delta
	}
}
