package system

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/blockfall/common"
	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
	"github.com/milk9111/blockfall/prefabs"
)

// eventRecorder copies each frame's events before World.Update discards them.
type eventRecorder struct {
	events []ecs.Event
}

func (r *eventRecorder) Update(w *ecs.World) {
	r.events = append(r.events, w.Events().Items()...)
}

func (r *eventRecorder) count(t ecs.EventType) int {
	n := 0
	for _, evt := range r.events {
		if evt.Type == t {
			n++
		}
	}
	return n
}

func newPieceTestWorld(t *testing.T) (*ecs.World, *eventRecorder) {
	t.Helper()
	cfg, err := prefabs.LoadConfig()
	require.NoError(t, err)

	board := common.NewBoard(cfg.Board.Lanes, cfg.Board.Rows, cfg.Board.BlockSize)
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(board, cfg.Physics))

	rec := &eventRecorder{}
	w.AddSystem(NewPhysicsSystem())
	w.AddSystem(NewPieceSystem(rand.New(rand.NewSource(1)), nil))
	w.AddSystem(rec)
	return w, rec
}

func blockCounts(w *ecs.World) (active, settled int) {
	for _, e := range w.Query(component.BlockComponent.Kind()) {
		block, ok := ecs.Get(w, e, component.BlockComponent)
		if !ok {
			continue
		}
		if block.Active {
			active++
		} else {
			settled++
		}
	}
	return active, settled
}

func TestPieceSpawnsOnFirstFrame(t *testing.T) {
	w, rec := newPieceTestWorld(t)

	w.Update()

	active, settledCount := blockCounts(w)
	assert.Equal(t, 4, active)
	assert.Zero(t, settledCount)
	assert.Equal(t, 1, rec.count(ecs.EventPieceSpawned))
}

func TestPieceSettlesAndNextSpawns(t *testing.T) {
	w, rec := newPieceTestWorld(t)

	// Let the first piece fall, sleep on the floor, and hand over to the next.
	settledFrame := -1
	for i := 0; i < 3600; i++ {
		w.Update()
		if rec.count(ecs.EventPieceSettled) > 0 {
			settledFrame = i
			break
		}
	}
	require.GreaterOrEqual(t, settledFrame, settleGraceFrames, "piece settled before it could fall")

	active, settledCount := blockCounts(w)
	assert.Equal(t, 4, active, "a fresh piece should be in flight")
	assert.Equal(t, 4, settledCount, "the landed piece should join the stack")
	assert.Equal(t, 2, rec.count(ecs.EventPieceSpawned))

	pw := w.PhysicsWorld()
	board := pw.Board()
	for _, e := range w.Query(component.BlockComponent.Kind()) {
		block, _ := ecs.Get(w, e, component.BlockComponent)
		if block == nil || block.Active {
			continue
		}
		rb, ok := ecs.Get(w, e, component.RigidBodyComponent)
		require.True(t, ok)
		row := board.RowAt(rb.Body.Position().Y)
		assert.GreaterOrEqual(t, row, 0)
		assert.Less(t, row, board.Rows)
	}
}

func TestSettleDetachesJoints(t *testing.T) {
	cfg, err := prefabs.LoadConfig()
	require.NoError(t, err)
	board := common.NewBoard(cfg.Board.Lanes, cfg.Board.Rows, cfg.Board.BlockSize)
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld(board, cfg.Physics)
	w.SetPhysicsWorld(pw)

	phys := NewPhysicsSystem()
	ps := NewPieceSystem(rand.New(rand.NewSource(2)), nil)

	ps.Update(w)
	first := ps.piece
	require.NotNil(t, first)

	joints := append([]*cp.Constraint(nil), first.Joints...)
	require.NotEmpty(t, joints)
	for _, joint := range joints {
		require.True(t, pw.Space().ContainsConstraint(joint), "fresh piece joint missing from space")
	}

	for i := 0; i < 3600 && ps.piece == first; i++ {
		phys.Update(w)
		ps.Update(w)
	}
	require.NotSame(t, first, ps.piece, "piece never settled")

	// Joints live only while the piece is in flight; settling must pull every
	// one of them out of the space and demote the blocks.
	for _, joint := range joints {
		assert.False(t, pw.Space().ContainsConstraint(joint))
	}
	for _, e := range first.Blocks {
		block, ok := ecs.Get(w, e, component.BlockComponent)
		require.True(t, ok)
		assert.False(t, block.Active)
	}
}
