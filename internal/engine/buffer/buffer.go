package buffer

import (
	"bytes"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ScratchName is the buffer name used when no file backs the buffer.
// A buffer with this name has nowhere to persist to.
const ScratchName = "Untitled"

// Buffer is the editable text store. It owns the raw text and a line-start
// offset index that is patched incrementally on every edit rather than
// rescanned.
//
// Index invariants, preserved by every operation:
//
//   - lineOffsets is strictly increasing and lineOffsets[0] == 0
//   - len(lineOffsets) == 1 + number of '\n' bytes in text
//   - lineOffsets[i] is the byte offset of line i's first byte
//
// Line i spans [lineOffsets[i], lineOffsets[i+1]-1) for all but the last
// line, which runs to the end of the text.
//
// A Buffer assumes exclusive sequential ownership; it is not safe for
// concurrent use.
type Buffer struct {
	id          string
	name        string
	text        []byte
	lineOffsets []int
	revisionID  RevisionID
}

// New creates a buffer with the given name and initial content.
// The offset index is built with a single scan of the text.
func New(name, text string) *Buffer {
	b := &Buffer{
		id:   uuid.New().String(),
		name: name,
	}
	b.Replace(text)
	return b
}

// Replace swaps in entirely new content and rebuilds the offset index.
// Used on file load; edits should go through the incremental operations.
func (b *Buffer) Replace(text string) {
	b.text = []byte(text)
	b.lineOffsets = scanLineOffsets(b.text)
	b.revisionID = NewRevisionID()
}

// scanLineOffsets builds the line-start index in one pass.
func scanLineOffsets(text []byte) []int {
	offsets := make([]int, 1, 1+bytes.Count(text, []byte{'\n'}))
	offsets[0] = 0
	for i, c := range text {
		if c == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// ID returns the buffer's unique identity. A new identity is assigned per
// buffer instance, so switching files yields a distinct ID even when the
// path is reused.
func (b *Buffer) ID() string {
	return b.id
}

// Name returns the buffer name: the source path's final component, or
// ScratchName for an unbacked buffer.
func (b *Buffer) Name() string {
	return b.name
}

// SetName renames the buffer. Called after a successful save to a new path.
func (b *Buffer) SetName(name string) {
	b.name = name
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

// RevisionID returns the current revision ID. Every mutation produces a
// new revision.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return len(b.lineOffsets)
}

// LineOffsets returns the line-start index. The slice is shared with the
// buffer and must not be mutated; it is exposed for tests and diagnostics.
func (b *Buffer) LineOffsets() []int {
	return b.lineOffsets
}

// lineSpan returns the byte range [start, end) of a line's content,
// excluding the trailing newline. The row must be in range.
func (b *Buffer) lineSpan(row int) (start, end int) {
	start = b.lineOffsets[row]
	if row+1 < len(b.lineOffsets) {
		return start, b.lineOffsets[row+1] - 1
	}
	return start, len(b.text)
}

// Line returns the text of a line without its newline.
// Returns false if row is out of range.
func (b *Buffer) Line(row int) (string, bool) {
	if row < 0 || row >= len(b.lineOffsets) {
		return "", false
	}
	start, end := b.lineSpan(row)
	return string(b.text[start:end]), true
}

// LineByteLen returns the byte length of a line's content, or 0 if row is
// out of range.
func (b *Buffer) LineByteLen(row int) int {
	if row < 0 || row >= len(b.lineOffsets) {
		return 0
	}
	start, end := b.lineSpan(row)
	return end - start
}

// LineRuneLen returns the number of characters on a line, or 0 if row is
// out of range.
func (b *Buffer) LineRuneLen(row int) int {
	if row < 0 || row >= len(b.lineOffsets) {
		return 0
	}
	start, end := b.lineSpan(row)
	return utf8.RuneCount(b.text[start:end])
}

// CharToByte maps a character column on a row to a byte offset into the
// buffer. The walk follows rune boundaries, so the result never lands
// inside a multi-byte encoding. A column at or past the end of the line
// clamps to the line's byte length (the append position).
// Returns false if row is out of range.
func (b *Buffer) CharToByte(row, col int) (int, bool) {
	if row < 0 || row >= len(b.lineOffsets) {
		return 0, false
	}
	start, end := b.lineSpan(row)
	line := b.text[start:end]

	pos := 0
	for i := 0; i < col; i++ {
		if pos >= len(line) {
			break
		}
		_, size := utf8.DecodeRune(line[pos:])
		pos += size
	}
	return start + pos, true
}

// RuneAt returns the character at a (row, col) position.
// Returns false if the position is out of range or past the line end.
func (b *Buffer) RuneAt(row, col int) (rune, bool) {
	pos, ok := b.CharToByte(row, col)
	if !ok {
		return 0, false
	}
	_, end := b.lineSpan(row)
	if pos >= end {
		return 0, false
	}
	r, _ := utf8.DecodeRune(b.text[pos:])
	return r, true
}
