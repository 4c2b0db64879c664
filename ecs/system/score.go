package system

import (
	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
)

// Classic scoring: single, double, triple, tetris. A physics clear can take
// out more than four rows at once; anything past four scores like a tetris.
var lineScores = []int{0, 100, 300, 500, 800}

// ScoreSystem folds the frame's game events into the session score.
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (ss *ScoreSystem) Update(w *ecs.World) {
	sessionEntity, ok := w.First(component.ScoreComponent.Kind())
	if !ok {
		return
	}
	score, ok := ecs.Get(w, sessionEntity, component.ScoreComponent)
	if !ok {
		return
	}

	for _, evt := range w.Events().Items() {
		switch evt.Type {
		case ecs.EventPieceSettled:
			score.Pieces++
		case ecs.EventRowsCleared:
			data, ok := evt.Data.(ecs.RowsClearedData)
			if !ok {
				continue
			}
			n := len(data.Rows)
			score.Lines += n
			if n >= len(lineScores) {
				n = len(lineScores) - 1
			}
			score.Points += lineScores[n]
		case ecs.EventToppedOut:
			score.GameOver = true
		}
	}
}
