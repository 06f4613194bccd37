// Package frame composes full screen frames from editor state. It fills
// a cell grid with the buffer text, gutter, status line and command
// overlay; the grid pair diff in the renderer package turns consecutive
// frames into terminal writes.
package frame

import (
	"unicode/utf8"

	"github.com/dshills/vigor/internal/editor"
	"github.com/dshills/vigor/internal/renderer"
	"github.com/dshills/vigor/internal/renderer/gutter"
	"github.com/dshills/vigor/internal/renderer/highlight"
	"github.com/dshills/vigor/internal/renderer/statusline"
)

// Build renders one complete frame of the editor into grid, resizing it
// to the editor's terminal size first. It returns the screen position
// where the hardware cursor belongs: inside the command overlay while
// the command line is active, on the buffer cursor otherwise.
func Build(e *editor.Editor, grid *renderer.Grid) (cursorX, cursorY int) {
	width, height := e.Size()
	grid.Resize(width, height)
	grid.Clear()

	buildText(e, grid)
	buildStatus(e, grid)

	// The overlay paints over whatever occupies its row, so it goes last.
	if e.CommandLine().IsActive() {
		buildOverlay(e, grid)
		return overlayCursor(e, width), 0
	}

	cur := e.Cursor()
	line, _ := e.Buffer().Line(cur.Row)
	x := screenCol(e.GutterWidth(), []rune(line), e.Viewport().X(), cur.Col)
	return x, cur.Row - e.Viewport().Y()
}

// screenCol maps a cursor column to its screen x, summing the display
// widths of the runes between the viewport's left edge and the column.
// Columns past the end of the line count one cell each.
func screenCol(gw int, runes []rune, viewX, col int) int {
	x := gw
	for i := viewX; i < col; i++ {
		x++
		if i < len(runes) && renderer.RuneWidth(runes[i]) == 2 {
			x++
		}
	}
	return x
}

// textRows returns the number of grid rows holding buffer content: the
// full height minus the status line and overlay rows.
func textRows(height int) int {
	rows := height - 2
	if rows < 0 {
		rows = 0
	}
	return rows
}

func buildText(e *editor.Editor, grid *renderer.Grid) {
	buf := e.Buffer()
	cur := e.Cursor()
	view := e.Viewport()
	theme := e.Theme()

	width := grid.Width()
	rows := textRows(grid.Height())

	gw := e.GutterWidth()
	gstyle := gutter.Style{
		Number:    renderer.NewStyle(theme.GutterForeground).WithBackground(theme.Background),
		Active:    renderer.NewStyle(theme.GutterActive).WithBackground(theme.Background),
		Separator: renderer.NewStyle(theme.GutterForeground).WithBackground(theme.Background),
	}

	base := theme.BaseStyle()
	cursorStyle := renderer.NewStyle(theme.Background).
		WithBackground(theme.CursorColor(e.Mode().String()))

	for ry := 0; ry < rows; ry++ {
		row := view.Y() + ry

		if row >= buf.LineCount() {
			if gw > 0 {
				setCells(grid, 0, ry, gutter.BlankCells(gw, gstyle))
			}
			continue
		}

		active := row == cur.Row
		if gw > 0 {
			setCells(grid, 0, ry, gutter.Cells(row, gw, active, gstyle))
		}

		rowBase := base
		if active {
			rowBase = base.WithBackground(theme.LineHighlight)
		}

		line, _ := buf.Line(row)
		spans := e.HighlightSpans(row, line)

		// Spans address bytes, the cell walk addresses runes; keep a
		// byte offset running alongside the column.
		runes := []rune(line)
		byteOff := 0
		for i := 0; i < view.X() && i < len(runes); i++ {
			byteOff += utf8.RuneLen(runes[i])
		}

		x := gw
		for col := view.X(); col < len(runes) && x < width; col++ {
			style := rowBase.Merge(highlight.StyleAt(spans, byteOff, rowBase))
			byteOff += utf8.RuneLen(runes[col])
			if active && col == cur.Col {
				style = cursorStyle
			}

			cell := renderer.NewCell(runes[col], style)
			grid.SetCell(x, ry, cell)
			x++
			if cell.Width == 2 && x < width {
				grid.SetCell(x, ry, renderer.ContinuationCell(style))
				x++
			}
		}

		// The cursor rests one past the last character after $ or while
		// appending; give it a phantom cell there.
		if active && cur.Col >= len(runes) {
			if px := screenCol(gw, runes, view.X(), cur.Col); px >= gw && px < width {
				grid.SetCell(px, ry, renderer.NewCell(' ', cursorStyle))
			}
		}
	}
}

func buildStatus(e *editor.Editor, grid *renderer.Grid) {
	y := grid.Height() - 2
	if y < 0 {
		return
	}

	buf := e.Buffer()
	cur := e.Cursor()
	info := statusline.Info{
		Mode:       e.Mode().DisplayName(),
		BufferName: buf.Name(),
		Row:        cur.Row,
		Col:        cur.Col,
		LineCount:  buf.LineCount(),
		LineLen:    buf.LineRuneLen(cur.Row),
	}

	style := renderer.NewStyle(renderer.ColorWhite).
		WithBackground(e.Theme().StatusColor(e.Mode().String()))
	setCells(grid, 0, y, statusline.Cells(info, grid.Width(), style))

	// Transient failure messages sit right-aligned on the same row.
	if msg := e.StatusMessage(); msg != "" {
		runes := []rune(msg + " ")
		x := grid.Width() - len(runes)
		if x < 0 {
			x = 0
		}
		for _, r := range runes {
			if x >= grid.Width() {
				break
			}
			grid.SetCell(x, y, renderer.NewCell(r, style.Bold()))
			x++
		}
	}
}

// overlayPrompt is the text shown before the command input.
const overlayPrompt = "~ "

func buildOverlay(e *editor.Editor, grid *renderer.Grid) {
	width := grid.Width()
	theme := e.Theme()

	fill := renderer.NewStyle(theme.Foreground).WithBackground(theme.OverlayBackground)
	for x := 0; x < width; x++ {
		grid.SetCell(x, 0, renderer.NewCell(' ', fill))
	}

	prompt := []rune(overlayPrompt + e.CommandLine().Text())
	x := overlayStart(width, len(prompt))
	for _, r := range prompt {
		if x >= width {
			break
		}
		grid.SetCell(x, 0, renderer.NewCell(r, fill))
		x++
	}

	cursorStyle := renderer.NewStyle(theme.Background).
		WithBackground(theme.CursorColor("command"))
	if cx := overlayCursor(e, width); cx < width {
		grid.SetCell(cx, 0, renderer.NewCell(' ', cursorStyle))
	}
}

// overlayStart centers the prompt text on the overlay row.
func overlayStart(width, promptLen int) int {
	x := (width - promptLen) / 2
	if x < 0 {
		x = 0
	}
	return x
}

// overlayCursor returns the screen column of the command line cursor.
func overlayCursor(e *editor.Editor, width int) int {
	c := e.CommandLine()
	start := overlayStart(width, len(overlayPrompt)+len([]rune(c.Text())))
	return start + len(overlayPrompt) + c.Cursor()
}

func setCells(grid *renderer.Grid, x, y int, cells []renderer.Cell) {
	for i, cell := range cells {
		grid.SetCell(x+i, y, cell)
	}
}
