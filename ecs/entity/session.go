package entity

import (
	"fmt"

	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
)

// NewSession spawns the singleton entity carrying control input and score.
func NewSession(w *ecs.World) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.SessionTagComponent, &component.SessionTag{}); err != nil {
		return 0, fmt.Errorf("session: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("session: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.ScoreComponent, &component.Score{}); err != nil {
		return 0, fmt.Errorf("session: add score: %w", err)
	}
	return e, nil
}
