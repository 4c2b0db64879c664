package system

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockfall/common"
	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
)

// LineClearSystem scans the settled stack whenever a piece lands. A row is
// full when every lane band contains at least one settled block center; full
// rows are despawned and the remaining stack is woken so it falls.
type LineClearSystem struct{}

func NewLineClearSystem() *LineClearSystem {
	return &LineClearSystem{}
}

func (lc *LineClearSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	if !hasEvent(w, ecs.EventPieceSettled) {
		return
	}
	board := pw.Board()

	settled := settledBlocks(w)
	centers := make([]cp.Vector, len(settled))
	for i, s := range settled {
		centers[i] = s.pos
	}

	full := fullRows(board, centers)
	if len(full) == 0 {
		return
	}

	fullSet := make(map[int]bool, len(full))
	for _, row := range full {
		fullSet[row] = true
	}

	removed := 0
	for _, s := range settled {
		if !fullSet[board.RowAt(s.pos.Y)] {
			continue
		}
		if rb, ok := ecs.Get(w, s.e, component.RigidBodyComponent); ok {
			pw.RemoveBlock(rb.Body, rb.Shape)
		}
		w.DestroyEntity(s.e)
		removed++
	}

	pw.WakeAll()
	w.Events().Push(ecs.Event{
		Type: ecs.EventRowsCleared,
		Data: ecs.RowsClearedData{Rows: full, Blocks: removed},
	})
}

type settledBlock struct {
	e    ecs.Entity
	pos  cp.Vector
	body *cp.Body
}

func settledBlocks(w *ecs.World) []settledBlock {
	var out []settledBlock
	for _, e := range w.Query(component.BlockComponent.Kind(), component.RigidBodyComponent.Kind()) {
		block, ok := ecs.Get(w, e, component.BlockComponent)
		if !ok || block.Active {
			continue
		}
		rb, ok := ecs.Get(w, e, component.RigidBodyComponent)
		if !ok || rb.Body == nil {
			continue
		}
		out = append(out, settledBlock{e: e, pos: rb.Body.Position(), body: rb.Body})
	}
	return out
}

// fullRows returns the rows in which every lane holds at least one block
// center, sorted ascending. Centers outside the playfield are ignored.
func fullRows(b common.Board, centers []cp.Vector) []int {
	occupied := make(map[int]map[int]bool)
	for _, pos := range centers {
		col := b.ColAt(pos.X)
		row := b.RowAt(pos.Y)
		if col < 0 || col >= b.Lanes || row < 0 || row >= b.Rows {
			continue
		}
		if occupied[row] == nil {
			occupied[row] = make(map[int]bool)
		}
		occupied[row][col] = true
	}

	var full []int
	for row, cols := range occupied {
		if len(cols) >= b.Lanes {
			full = append(full, row)
		}
	}
	sort.Ints(full)
	return full
}

func hasEvent(w *ecs.World, t ecs.EventType) bool {
	for _, evt := range w.Events().Items() {
		if evt.Type == t {
			return true
		}
	}
	return false
}
