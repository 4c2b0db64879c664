package common

// The game uses a few coordinate systems.
//
// 1. Tetromino coordinates (discrete): the middle block of a piece is (0, 0),
//    +y points up.
// 2. Board coordinates (discrete): column 0 is the left lane, row 0 is the
//    bottom row, rows grow upward.
// 3. Physics/screen coordinates (pixels): the Chipmunk space and the screen
//    share one frame, origin at the top-left of the window, +y down. A block
//    is BlockSize pixels on a side.

// Board describes the playfield geometry in pixels.
type Board struct {
	Lanes     int
	Rows      int
	BlockSize float64

	// Margins around the playfield, in blocks. SpawnHeadroom rows above the
	// top edge are where pieces drop in from.
	SideMargin    int
	SpawnHeadroom int
	FloorBlocks   int
}

// NewBoard builds a board with the layout margins used by the game window.
func NewBoard(lanes, rows int, blockSize float64) Board {
	return Board{
		Lanes:         lanes,
		Rows:          rows,
		BlockSize:     blockSize,
		SideMargin:    3,
		SpawnHeadroom: 3,
		FloorBlocks:   2,
	}
}

// ScreenSize returns the window size in pixels.
func (b Board) ScreenSize() (int, int) {
	w := float64(b.Lanes+2*b.SideMargin) * b.BlockSize
	h := float64(b.Rows+b.SpawnHeadroom+b.FloorBlocks) * b.BlockSize
	return int(w), int(h)
}

// LeftEdgeX is the x position of the left edge of lane 0.
func (b Board) LeftEdgeX() float64 {
	return float64(b.SideMargin) * b.BlockSize
}

// RightEdgeX is the x position of the right edge of the last lane.
func (b Board) RightEdgeX() float64 {
	return b.LeftEdgeX() + float64(b.Lanes)*b.BlockSize
}

// FloorY is the y position of the floor surface (top of the floor body).
func (b Board) FloorY() float64 {
	return float64(b.SpawnHeadroom+b.Rows) * b.BlockSize
}

// CellCenter returns the physics position of the center of a board cell.
// Rows above the board (row >= Rows) resolve to positions above the top edge,
// which is where fresh pieces spawn.
func (b Board) CellCenter(col, row int) (float64, float64) {
	x := b.LeftEdgeX() + (float64(col)+0.5)*b.BlockSize
	y := b.FloorY() - (float64(row)+0.5)*b.BlockSize
	return x, y
}

// SpawnCell translates a tetromino coordinate to the board cell a fresh
// piece's block starts in: centered horizontally, just above the top row.
func (b Board) SpawnCell(tx, ty int) (int, int) {
	return tx + b.Lanes/2, ty + b.Rows
}

// ColAt returns the lane whose band contains x. The result may fall outside
// [0, Lanes) for positions off the playfield.
func (b Board) ColAt(x float64) int {
	return floorDiv(x-b.LeftEdgeX(), b.BlockSize)
}

// RowAt returns the row whose band contains y. Row 0 touches the floor.
func (b Board) RowAt(y float64) int {
	return floorDiv(b.FloorY()-y, b.BlockSize)
}

func floorDiv(v, size float64) int {
	q := v / size
	n := int(q)
	if q < 0 && float64(n) != q {
		n--
	}
	return n
}
