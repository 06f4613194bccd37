package renderer

// Grid is a fixed-size 2D array of cells covering the terminal. Two live
// grids (current and previous) back the diff renderer; after each frame
// their roles swap instead of copying.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a grid of the given size, filled with empty cells.
// Dimensions are clamped to a minimum of 0.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	g.Clear()
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Clear resets every cell to the empty cell.
func (g *Grid) Clear() {
	empty := EmptyCell()
	for i := range g.cells {
		g.cells[i] = empty
	}
}

// Resize reallocates the grid for a new terminal size, default-filling all
// cells. A no-op when the size is unchanged.
func (g *Grid) Resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width = width
	g.height = height
	g.cells = make([]Cell, width*height)
	g.Clear()
}

// Cell returns the cell at (x, y).
// Returns an empty cell and false when out of range.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return EmptyCell(), false
	}
	return g.cells[y*g.width+x], true
}

// SetCell writes a cell at (x, y). Out-of-range writes are dropped.
func (g *Grid) SetCell(x, y int, cell Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = cell
}

// CellWrite is one positioned cell update emitted by the diff.
type CellWrite struct {
	X, Y int
	Cell Cell
}

// Diff compares two grids and returns a write for every cell that
// differs; identical cells are skipped. Grids of different sizes diff as
// a full repaint of current.
func Diff(current, previous *Grid) []CellWrite {
	var writes []CellWrite

	if current.width != previous.width || current.height != previous.height {
		for y := 0; y < current.height; y++ {
			for x := 0; x < current.width; x++ {
				writes = append(writes, CellWrite{X: x, Y: y, Cell: current.cells[y*current.width+x]})
			}
		}
		return writes
	}

	for i, cell := range current.cells {
		if !cell.Equals(previous.cells[i]) {
			writes = append(writes, CellWrite{X: i % current.width, Y: i / current.width, Cell: cell})
		}
	}
	return writes
}
