package tetromino

import (
	"image/color"
	"math/rand"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	I Kind = iota
	O
	T
	J
	L
	S
	Z

	KindCount = 7
)

var kindNames = [KindCount]string{"i", "o", "t", "j", "l", "s", "z"}

func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// KindByName resolves a lowercase kind name ("i".."z"). Used by config.
func KindByName(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Coord is a discrete tetromino-space coordinate, +y up, with the piece's
// middle block at (0, 0).
type Coord struct {
	X, Y int
}

// Layout describes the four blocks of a piece and which block pairs are
// joined. Joints index into Coords; every joined pair is edge-adjacent so the
// physics joints sit at block midpoints.
type Layout struct {
	Coords [4]Coord
	Joints [][2]int
}

var layouts = [KindCount]Layout{
	I: {
		Coords: [4]Coord{{1, 1}, {1, 0}, {1, -1}, {1, -2}},
		Joints: [][2]int{{0, 1}, {1, 2}, {2, 3}},
	},
	O: {
		Coords: [4]Coord{{0, 0}, {1, 0}, {1, -1}, {0, -1}},
		Joints: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	},
	T: {
		Coords: [4]Coord{{0, 0}, {1, 0}, {2, 0}, {1, -1}},
		Joints: [][2]int{{0, 1}, {1, 2}, {1, 3}},
	},
	J: {
		Coords: [4]Coord{{1, 0}, {1, -1}, {1, -2}, {0, -2}},
		Joints: [][2]int{{0, 1}, {1, 2}, {2, 3}},
	},
	L: {
		Coords: [4]Coord{{1, 0}, {1, -1}, {1, -2}, {2, -2}},
		Joints: [][2]int{{0, 1}, {1, 2}, {2, 3}},
	},
	S: {
		Coords: [4]Coord{{0, -1}, {1, -1}, {1, 0}, {2, 0}},
		Joints: [][2]int{{0, 1}, {1, 2}, {2, 3}},
	},
	Z: {
		Coords: [4]Coord{{0, 0}, {1, 0}, {1, -1}, {2, -1}},
		Joints: [][2]int{{0, 1}, {1, 2}, {2, 3}},
	},
}

// Layout returns the block layout for the kind.
func (k Kind) Layout() Layout {
	if k < 0 || int(k) >= KindCount {
		return layouts[I]
	}
	return layouts[k]
}

var colors = [KindCount]color.NRGBA{
	I: {R: 0x00, G: 0xbc, B: 0xd4, A: 0xff},
	O: {R: 0xff, G: 0xd5, B: 0x4f, A: 0xff},
	T: {R: 0xab, G: 0x47, B: 0xbc, A: 0xff},
	J: {R: 0x42, G: 0x85, B: 0xf4, A: 0xff},
	L: {R: 0xff, G: 0x8a, B: 0x3d, A: 0xff},
	S: {R: 0x66, G: 0xbb, B: 0x6a, A: 0xff},
	Z: {R: 0xef, G: 0x53, B: 0x50, A: 0xff},
}

// Color returns the default block color for the kind. Config may override it.
func (k Kind) Color() color.NRGBA {
	if k < 0 || int(k) >= KindCount {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return colors[k]
}

// Random draws a uniformly random kind from r.
func Random(r *rand.Rand) Kind {
	return Kind(r.Intn(KindCount))
}
