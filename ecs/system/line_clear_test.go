package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/blockfall/common"
	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
	"github.com/milk9111/blockfall/prefabs"
	"github.com/milk9111/blockfall/tetromino"
)

const testStepDT = 1.0 / 60.0

func newStackTestWorld(t *testing.T, board common.Board) *ecs.World {
	t.Helper()
	cfg, err := prefabs.LoadConfig()
	require.NoError(t, err)
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(board, cfg.Physics))
	return w
}

func defaultBoard(t *testing.T) common.Board {
	t.Helper()
	cfg, err := prefabs.LoadConfig()
	require.NoError(t, err)
	return common.NewBoard(cfg.Board.Lanes, cfg.Board.Rows, cfg.Board.BlockSize)
}

// spawnStackBlockAt plants a block entity with its body centered at (x, y).
// Settled blocks get Active false, as if their piece already landed.
func spawnStackBlockAt(t *testing.T, w *ecs.World, active bool, x, y float64) ecs.Entity {
	t.Helper()
	pw := w.PhysicsWorld()
	e := w.CreateEntity()
	body, shape := pw.AddBlockBody(e, x, y)
	require.NoError(t, ecs.Add(w, e, component.BlockComponent, &component.Block{Kind: tetromino.O, Active: active}))
	require.NoError(t, ecs.Add(w, e, component.RigidBodyComponent, &component.RigidBody{Body: body, Shape: shape}))
	return e
}

func spawnStackBlock(t *testing.T, w *ecs.World, active bool, col, row int) ecs.Entity {
	t.Helper()
	x, y := w.PhysicsWorld().Board().CellCenter(col, row)
	return spawnStackBlockAt(t, w, active, x, y)
}

func blockBody(t *testing.T, w *ecs.World, e ecs.Entity) *cp.Body {
	t.Helper()
	rb, ok := ecs.Get(w, e, component.RigidBodyComponent)
	require.True(t, ok)
	return rb.Body
}

func stepUntilAsleep(t *testing.T, w *ecs.World, bodies []*cp.Body, maxSteps int) {
	t.Helper()
	pw := w.PhysicsWorld()
	for i := 0; i < maxSteps; i++ {
		pw.Step(testStepDT)
		asleep := true
		for _, b := range bodies {
			if !b.IsSleeping() {
				asleep = false
				break
			}
		}
		if asleep {
			return
		}
	}
	t.Fatalf("bodies never fell asleep in %d steps", maxSteps)
}

func clearedEvent(w *ecs.World) (ecs.RowsClearedData, bool) {
	for _, evt := range w.Events().Items() {
		if evt.Type == ecs.EventRowsCleared {
			data, ok := evt.Data.(ecs.RowsClearedData)
			return data, ok
		}
	}
	return ecs.RowsClearedData{}, false
}

func rowOfCenters(b common.Board, row int, cols ...int) []cp.Vector {
	out := make([]cp.Vector, 0, len(cols))
	for _, col := range cols {
		x, y := b.CellCenter(col, row)
		out = append(out, cp.Vector{X: x, Y: y})
	}
	return out
}

func allCols(b common.Board) []int {
	cols := make([]int, b.Lanes)
	for i := range cols {
		cols[i] = i
	}
	return cols
}

func TestFullRows(t *testing.T) {
	b := common.NewBoard(10, 20, 30)

	t.Run("empty_stack", func(t *testing.T) {
		assert.Empty(t, fullRows(b, nil))
	})

	t.Run("complete_bottom_row", func(t *testing.T) {
		centers := rowOfCenters(b, 0, allCols(b)...)
		assert.Equal(t, []int{0}, fullRows(b, centers))
	})

	t.Run("one_lane_missing", func(t *testing.T) {
		centers := rowOfCenters(b, 0, allCols(b)[:b.Lanes-1]...)
		assert.Empty(t, fullRows(b, centers))
	})

	t.Run("two_full_rows_sorted", func(t *testing.T) {
		centers := rowOfCenters(b, 3, allCols(b)...)
		centers = append(centers, rowOfCenters(b, 1, allCols(b)...)...)
		centers = append(centers, rowOfCenters(b, 2, 0, 4, 9)...)
		assert.Equal(t, []int{1, 3}, fullRows(b, centers))
	})

	t.Run("two_blocks_in_one_lane_do_not_double_count", func(t *testing.T) {
		// Nine lanes filled, plus a second block stacked in lane 0.
		centers := rowOfCenters(b, 0, allCols(b)[:b.Lanes-1]...)
		x, y := b.CellCenter(0, 0)
		centers = append(centers, cp.Vector{X: x + 2, Y: y - 3})
		assert.Empty(t, fullRows(b, centers))
	})

	t.Run("off_board_centers_ignored", func(t *testing.T) {
		centers := rowOfCenters(b, 0, allCols(b)...)
		// A block resting outside the walls must not break row accounting,
		// and a row index above the top must never count as clearable.
		centers = append(centers, cp.Vector{X: b.LeftEdgeX() - b.BlockSize, Y: b.FloorY() - 5})
		centers = append(centers, rowOfCenters(b, b.Rows+1, allCols(b)...)...)
		assert.Equal(t, []int{0}, fullRows(b, centers))
	})

	t.Run("tilted_blocks_count_by_center", func(t *testing.T) {
		// Centers jittered within the row band still occupy their lanes.
		centers := make([]cp.Vector, 0, b.Lanes)
		for col := 0; col < b.Lanes; col++ {
			x, y := b.CellCenter(col, 5)
			centers = append(centers, cp.Vector{X: x - 6, Y: y + 9})
		}
		assert.Equal(t, []int{5}, fullRows(b, centers))
	})
}

func TestFullRowsNarrowBoard(t *testing.T) {
	b := common.NewBoard(4, 8, 30)

	centers := rowOfCenters(b, 0, 0, 1, 2, 3)
	require.Equal(t, []int{0}, fullRows(b, centers))

	centers = rowOfCenters(b, 0, 0, 1, 3)
	require.Empty(t, fullRows(b, centers))
}

func TestLineClearSystemDespawnsFullRow(t *testing.T) {
	board := defaultBoard(t)
	w := newStackTestWorld(t, board)
	pw := w.PhysicsWorld()

	row0 := make([]ecs.Entity, 0, board.Lanes)
	for col := 0; col < board.Lanes; col++ {
		row0 = append(row0, spawnStackBlock(t, w, false, col, 0))
	}
	survivor := spawnStackBlock(t, w, false, 3, 1)
	inFlight := spawnStackBlock(t, w, true, 5, 2)

	lc := NewLineClearSystem()

	// Without a settle this frame the stack is left alone, full row or not.
	lc.Update(w)
	for _, e := range row0 {
		require.True(t, w.IsAlive(e))
	}

	w.Events().Push(ecs.Event{Type: ecs.EventPieceSettled})
	lc.Update(w)

	for _, e := range row0 {
		assert.False(t, w.IsAlive(e), "full-row block survived")
	}
	assert.True(t, w.IsAlive(survivor), "block above the cleared row despawned")
	assert.True(t, w.IsAlive(inFlight), "in-flight block despawned")

	data, ok := clearedEvent(w)
	require.True(t, ok, "no rows-cleared event")
	assert.Equal(t, []int{0}, data.Rows)
	assert.Equal(t, board.Lanes, data.Blocks)

	// The despawned bodies are gone from the space, and the survivor can
	// fall into the vacated row.
	body := blockBody(t, w, survivor)
	assert.False(t, body.IsSleeping())
	for i := 0; i < 600; i++ {
		pw.Step(testStepDT)
	}
	assert.Equal(t, 0, board.RowAt(body.Position().Y))
}

func TestLineClearIgnoresActivePiece(t *testing.T) {
	board := defaultBoard(t)
	w := newStackTestWorld(t, board)

	// Nine settled lanes; the tenth holds only an in-flight block, which must
	// not complete the row.
	var all []ecs.Entity
	for col := 0; col < board.Lanes-1; col++ {
		all = append(all, spawnStackBlock(t, w, false, col, 0))
	}
	all = append(all, spawnStackBlock(t, w, true, board.Lanes-1, 0))

	w.Events().Push(ecs.Event{Type: ecs.EventPieceSettled})
	NewLineClearSystem().Update(w)

	for _, e := range all {
		assert.True(t, w.IsAlive(e))
	}
	_, ok := clearedEvent(w)
	assert.False(t, ok, "rows-cleared event for an incomplete row")
}
