package common

import "testing"

func TestBoardEdges(t *testing.T) {
	b := NewBoard(10, 20, 30)

	if got := b.LeftEdgeX(); got != 90 {
		t.Fatalf("LeftEdgeX = %v, want 90", got)
	}
	if got := b.RightEdgeX(); got != 390 {
		t.Fatalf("RightEdgeX = %v, want 390", got)
	}
	if got := b.FloorY(); got != 690 {
		t.Fatalf("FloorY = %v, want 690", got)
	}

	w, h := b.ScreenSize()
	if w != 480 || h != 750 {
		t.Fatalf("ScreenSize = %dx%d, want 480x750", w, h)
	}
}

func TestCellCenter(t *testing.T) {
	b := NewBoard(10, 20, 30)

	cases := []struct {
		name     string
		col, row int
		x, y     float64
	}{
		{"bottom_left", 0, 0, 105, 675},
		{"bottom_right", 9, 0, 375, 675},
		{"top_left", 0, 19, 105, 105},
		{"above_board", 5, 20, 255, 75},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := b.CellCenter(c.col, c.row)
			if x != c.x || y != c.y {
				t.Fatalf("CellCenter(%d, %d) = (%v, %v), want (%v, %v)", c.col, c.row, x, y, c.x, c.y)
			}
		})
	}
}

func TestSpawnCell(t *testing.T) {
	b := NewBoard(10, 20, 30)

	// The middle block of a piece spawns in the center lane, one row above
	// the board top when its tetromino coordinate is (0, 0).
	col, row := b.SpawnCell(0, 0)
	if col != 5 || row != 20 {
		t.Fatalf("SpawnCell(0, 0) = (%d, %d), want (5, 20)", col, row)
	}

	col, row = b.SpawnCell(1, -2)
	if col != 6 || row != 18 {
		t.Fatalf("SpawnCell(1, -2) = (%d, %d), want (6, 18)", col, row)
	}
}

func TestColRowAtRoundTrip(t *testing.T) {
	b := NewBoard(10, 20, 30)

	for col := 0; col < b.Lanes; col++ {
		for row := 0; row < b.Rows; row++ {
			x, y := b.CellCenter(col, row)
			if got := b.ColAt(x); got != col {
				t.Fatalf("ColAt(center of col %d) = %d", col, got)
			}
			if got := b.RowAt(y); got != row {
				t.Fatalf("RowAt(center of row %d) = %d", row, got)
			}
		}
	}

	// Below the floor resolves to a negative row.
	if got := b.RowAt(b.FloorY() + 1); got >= 0 {
		t.Fatalf("RowAt below floor = %d, want negative", got)
	}
}
