// Package statusline renders the editor's status row.
package statusline

import (
	"fmt"

	"github.com/dshills/vigor/internal/renderer"
)

// Info is the state displayed on the status line.
type Info struct {
	// Mode is the display name of the active mode (e.g. "NORMAL").
	Mode string

	// BufferName is the current buffer's name.
	BufferName string

	// Row and Col are the cursor position, 0-indexed; displayed 1-indexed.
	Row int
	Col int

	// LineCount is the buffer's total line count.
	LineCount int

	// LineLen is the character length of the cursor's line.
	LineLen int
}

// Text formats the status line content.
func Text(info Info) string {
	return fmt.Sprintf(" %s | %s | Line: %d/%d Col: %d/%d ",
		info.Mode, info.BufferName,
		info.Row+1, info.LineCount,
		info.Col+1, info.LineLen)
}

// Cells renders the status line into a full row of cells, truncating the
// text at width and padding the remainder with the line's style.
func Cells(info Info, width int, style renderer.Style) []renderer.Cell {
	cells := make([]renderer.Cell, 0, width)

	for _, r := range Text(info) {
		if len(cells) >= width {
			break
		}
		cells = append(cells, renderer.NewCell(r, style))
		if w := renderer.RuneWidth(r); w == 2 && len(cells) < width {
			cells = append(cells, renderer.ContinuationCell(style))
		}
	}
	for len(cells) < width {
		cells = append(cells, renderer.NewCell(' ', style))
	}
	return cells[:width]
}
