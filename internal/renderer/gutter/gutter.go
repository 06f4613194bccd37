// Package gutter renders the line-number column left of buffer content.
package gutter

import (
	"strconv"

	"github.com/dshills/vigor/internal/renderer"
)

// Separator is the column drawn between line numbers and text.
const Separator = '│'

// Width returns the gutter width in cells for a buffer of lineCount
// lines: the decimal digit count of the highest line number plus one
// separator column.
func Width(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount)) + 1
}

// Style configures gutter colors.
type Style struct {
	// Number colors inactive line numbers.
	Number renderer.Style

	// Active colors the cursor line's number.
	Active renderer.Style

	// Separator colors the separator column.
	Separator renderer.Style
}

// Cells renders the gutter for one screen row: the 1-based line number
// right-aligned in width-1 cells plus the separator. active selects the
// highlighted style for the cursor's line.
func Cells(line, width int, active bool, style Style) []renderer.Cell {
	cells := make([]renderer.Cell, width)

	numStyle := style.Number
	if active {
		numStyle = style.Active
	}

	num := strconv.Itoa(line + 1)
	digits := width - 1
	pad := digits - len(num)

	for x := 0; x < digits; x++ {
		r := ' '
		if x >= pad {
			r = rune(num[x-pad])
		}
		cells[x] = renderer.NewCell(r, numStyle)
	}
	cells[digits] = renderer.NewCell(Separator, style.Separator)
	return cells
}

// BlankCells renders the gutter for a screen row past the end of the
// buffer: blank digits with the separator kept for a continuous edge.
func BlankCells(width int, style Style) []renderer.Cell {
	cells := make([]renderer.Cell, width)
	for x := 0; x < width-1; x++ {
		cells[x] = renderer.NewCell(' ', style.Number)
	}
	cells[width-1] = renderer.NewCell(Separator, style.Separator)
	return cells
}
