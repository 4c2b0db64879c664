package system

import (
	"github.com/milk9111/blockfall/ecs"
)

// TopOutSystem ends the game when the settled stack rests above the board's
// top row. It runs after line clearing so a clear that relieves the overflow
// in the same frame doesn't end the game.
type TopOutSystem struct{}

func NewTopOutSystem() *TopOutSystem {
	return &TopOutSystem{}
}

func (to *TopOutSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	if !hasEvent(w, ecs.EventPieceSettled) {
		return
	}
	board := pw.Board()

	for _, s := range settledBlocks(w) {
		// Only a resting block counts; a block bounced up by an impact is
		// not a topped-out stack.
		if !s.body.IsSleeping() {
			continue
		}
		col := board.ColAt(s.pos.X)
		if col < 0 || col >= board.Lanes {
			continue
		}
		if row := board.RowAt(s.pos.Y); row >= board.Rows {
			w.Events().Push(ecs.Event{Type: ecs.EventToppedOut, Data: row})
			return
		}
	}
}
