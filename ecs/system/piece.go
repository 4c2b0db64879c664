package system

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
	"github.com/milk9111/blockfall/ecs/entity"
	"github.com/milk9111/blockfall/tetromino"
)

// A piece can't settle in its first few frames, before it has had a chance
// to start falling.
const settleGraceFrames = 20

// PieceSystem owns the falling tetromino: it spawns the first piece, watches
// for the whole assembly to fall asleep, and on settle detaches the joints,
// demotes the blocks to stack material, and spawns the next piece.
type PieceSystem struct {
	rng    *rand.Rand
	images map[tetromino.Kind]*ebiten.Image

	piece *entity.Piece
	age   int
}

func NewPieceSystem(rng *rand.Rand, images map[tetromino.Kind]*ebiten.Image) *PieceSystem {
	return &PieceSystem{rng: rng, images: images}
}

func (ps *PieceSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	if ps.piece == nil {
		ps.spawn(w)
		return
	}

	ps.age++
	if ps.age < settleGraceFrames {
		return
	}
	if !ps.allSleeping(w) {
		return
	}

	for _, joint := range ps.piece.Joints {
		pw.Space().RemoveConstraint(joint)
	}
	for _, blockEntity := range ps.piece.Blocks {
		if block, ok := ecs.Get(w, blockEntity, component.BlockComponent); ok {
			block.Active = false
		}
	}
	w.Events().Push(ecs.Event{Type: ecs.EventPieceSettled, Data: ps.piece.Kind})

	ps.spawn(w)
}

func (ps *PieceSystem) allSleeping(w *ecs.World) bool {
	for _, blockEntity := range ps.piece.Blocks {
		if !w.IsAlive(blockEntity) {
			return false
		}
		rb, ok := ecs.Get(w, blockEntity, component.RigidBodyComponent)
		if !ok || rb.Body == nil || !rb.Body.IsSleeping() {
			return false
		}
	}
	return true
}

func (ps *PieceSystem) spawn(w *ecs.World) {
	kind := tetromino.Random(ps.rng)
	piece, err := entity.NewTetromino(w, kind, ps.images[kind])
	if err != nil {
		log.Printf("piece: spawn %s: %v", kind, err)
		return
	}
	ps.piece = piece
	ps.age = 0
	w.Events().Push(ecs.Event{Type: ecs.EventPieceSpawned, Data: kind})
}
