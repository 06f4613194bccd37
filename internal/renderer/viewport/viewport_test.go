package viewport

import "testing"

func TestEnsureVisible(t *testing.T) {
	tests := []struct {
		name       string
		startX     int
		startY     int
		row, col   int
		rows, cols int
		wantX      int
		wantY      int
	}{
		{"already visible", 0, 0, 3, 3, 10, 10, 0, 0},
		{"one row below", 0, 0, 10, 0, 10, 10, 0, 1},
		{"one row above", 0, 5, 4, 0, 10, 10, 0, 4},
		{"far below snaps minimally", 0, 0, 25, 0, 10, 10, 0, 16},
		{"one col right", 0, 0, 0, 10, 10, 10, 1, 0},
		{"col left", 5, 0, 0, 2, 10, 10, 2, 0},
		{"both axes", 0, 0, 12, 12, 10, 10, 3, 3},
		{"degenerate size", 0, 0, 5, 5, 0, 0, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Viewport{x: tt.startX, y: tt.startY}
			v.EnsureVisible(tt.row, tt.col, tt.rows, tt.cols)
			if v.X() != tt.wantX || v.Y() != tt.wantY {
				t.Errorf("expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, v.X(), v.Y())
			}
			if !v.Contains(tt.row, tt.col, max(tt.rows, 1), max(tt.cols, 1)) {
				t.Error("cursor not visible after EnsureVisible")
			}
		})
	}
}

func TestScrollDown(t *testing.T) {
	v := New()

	v.ScrollDown(4, 5)
	if v.Y() != 0 {
		t.Errorf("row 4 fits in 5 rows; expected y=0, got %d", v.Y())
	}

	v.ScrollDown(5, 5)
	if v.Y() != 1 {
		t.Errorf("expected y=1, got %d", v.Y())
	}
}

func TestScrollUp(t *testing.T) {
	v := &Viewport{y: 7}

	v.ScrollUp(9)
	if v.Y() != 7 {
		t.Errorf("row below top should not scroll; got y=%d", v.Y())
	}

	v.ScrollUp(3)
	if v.Y() != 3 {
		t.Errorf("expected y=3, got %d", v.Y())
	}
}

func TestReset(t *testing.T) {
	v := &Viewport{x: 4, y: 9}
	v.Reset()
	if v.X() != 0 || v.Y() != 0 {
		t.Errorf("expected origin, got (%d,%d)", v.X(), v.Y())
	}
}
