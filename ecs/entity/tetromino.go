package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockfall/common"
	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
	"github.com/milk9111/blockfall/tetromino"
)

// Piece tracks the live entities and joint constraints of the falling
// tetromino. The joints exist only while the piece is in flight; settling
// removes them and the blocks become loose stack material.
type Piece struct {
	Kind   tetromino.Kind
	Blocks []ecs.Entity
	Joints []*cp.Constraint
}

// NewTetromino spawns the four blocks of a piece at the board's top center,
// jointed together at the midpoints between neighboring blocks.
func NewTetromino(w *ecs.World, kind tetromino.Kind, img *ebiten.Image) (*Piece, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return nil, fmt.Errorf("tetromino: world has no physics world attached")
	}
	board := pw.Board()
	layout := kind.Layout()
	positions := BlockPositions(board, layout)

	piece := &Piece{Kind: kind}
	bodies := make([]*cp.Body, 0, len(positions))
	half := board.BlockSize / 2

	for _, pos := range positions {
		e := w.CreateEntity()
		body, shape := pw.AddBlockBody(e, pos.X, pos.Y)

		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
			return nil, fmt.Errorf("tetromino: add transform: %w", err)
		}
		if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Image: img, OriginX: half, OriginY: half}); err != nil {
			return nil, fmt.Errorf("tetromino: add sprite: %w", err)
		}
		if err := ecs.Add(w, e, component.BlockComponent, &component.Block{Kind: kind, Active: true}); err != nil {
			return nil, fmt.Errorf("tetromino: add block: %w", err)
		}
		if err := ecs.Add(w, e, component.RigidBodyComponent, &component.RigidBody{Body: body, Shape: shape}); err != nil {
			return nil, fmt.Errorf("tetromino: add rigid body: %w", err)
		}

		piece.Blocks = append(piece.Blocks, e)
		bodies = append(bodies, body)
	}

	for _, pair := range layout.Joints {
		anchorA, anchorB := JointAnchors(board, layout, pair)
		joint := cp.NewPivotJoint2(bodies[pair[0]], bodies[pair[1]], anchorA, anchorB)
		pw.Space().AddConstraint(joint)
		piece.Joints = append(piece.Joints, joint)
	}

	return piece, nil
}

// BlockPositions returns the physics position of each block of a layout when
// the piece spawns centered above the board's top row.
func BlockPositions(b common.Board, layout tetromino.Layout) [4]cp.Vector {
	var out [4]cp.Vector
	for i, c := range layout.Coords {
		col, row := b.SpawnCell(c.X, c.Y)
		x, y := b.CellCenter(col, row)
		out[i] = cp.Vector{X: x, Y: y}
	}
	return out
}

// JointAnchors returns body-local anchors at the midpoint between two joined
// blocks. Tetromino +y points up while physics +y points down, so the
// vertical offset flips sign.
func JointAnchors(b common.Board, layout tetromino.Layout, pair [2]int) (cp.Vector, cp.Vector) {
	ci := layout.Coords[pair[0]]
	cj := layout.Coords[pair[1]]
	dx := float64(cj.X-ci.X) * 0.5 * b.BlockSize
	dy := float64(ci.Y-cj.Y) * 0.5 * b.BlockSize
	return cp.Vector{X: dx, Y: dy}, cp.Vector{X: -dx, Y: -dy}
}
