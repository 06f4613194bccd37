// Package viewport tracks the visible sub-rectangle of the buffer.
package viewport

// Viewport maps a top-left buffer coordinate onto the terminal's top-left
// content cell. The editor adjusts it before every render so the cursor
// stays inside the visible rectangle.
//
// Like the rest of the engine, a Viewport assumes exclusive sequential
// ownership and is not safe for concurrent use.
type Viewport struct {
	x int // first visible buffer column
	y int // first visible buffer row
}

// New creates a viewport anchored at the buffer origin.
func New() *Viewport {
	return &Viewport{}
}

// X returns the first visible buffer column.
func (v *Viewport) X() int {
	return v.x
}

// Y returns the first visible buffer row.
func (v *Viewport) Y() int {
	return v.y
}

// Reset snaps the viewport back to the buffer origin.
// Used when the buffer is replaced wholesale.
func (v *Viewport) Reset() {
	v.x = 0
	v.y = 0
}

// ScrollDown moves the viewport so row is the last visible row.
// Used by the down motion when the cursor steps off the bottom edge.
func (v *Viewport) ScrollDown(row, visibleRows int) {
	if visibleRows < 1 {
		visibleRows = 1
	}
	if row >= v.y+visibleRows {
		v.y = row - visibleRows + 1
	}
}

// ScrollUp moves the viewport so row is the first visible row.
// Used by the up motion when the cursor steps off the top edge.
func (v *Viewport) ScrollUp(row int) {
	if row < v.y {
		v.y = row
	}
}

// EnsureVisible snaps the viewport by the minimal amount needed to bring
// (row, col) inside the visible rectangle on both axes. It never
// recenters: a cursor one row below the window scrolls one row, not half
// a screen.
func (v *Viewport) EnsureVisible(row, col, visibleRows, visibleCols int) {
	if visibleRows < 1 {
		visibleRows = 1
	}
	if visibleCols < 1 {
		visibleCols = 1
	}

	if row < v.y {
		v.y = row
	} else if row >= v.y+visibleRows {
		v.y = row - visibleRows + 1
	}

	if col < v.x {
		v.x = col
	} else if col >= v.x+visibleCols {
		v.x = col - visibleCols + 1
	}
}

// Contains reports whether (row, col) lies inside the visible rectangle.
func (v *Viewport) Contains(row, col, visibleRows, visibleCols int) bool {
	return row >= v.y && row < v.y+visibleRows &&
		col >= v.x && col < v.x+visibleCols
}
