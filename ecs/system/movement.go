package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
)

// MovementSystem turns control input into forces on the falling piece's
// bodies. Horizontal movement and soft drop push every block the same way;
// rotation applies a force couple around the piece's center of mass so the
// jointed assembly spins as one.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	sessionEntity, ok := w.First(component.InputComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, sessionEntity, component.InputComponent)
	if !ok {
		return
	}
	if input.MoveX == 0 && input.Rotate == 0 && !input.Drop {
		return
	}

	bodies := activeBlockBodies(w)
	if len(bodies) == 0 {
		return
	}

	tuning := pw.Tuning()

	if input.MoveX != 0 {
		f := cp.Vector{X: input.MoveX * tuning.MovementForce}
		for _, body := range bodies {
			body.ApplyForceAtLocalPoint(f, cp.Vector{})
		}
	}

	if input.Drop {
		f := cp.Vector{Y: tuning.DropForce}
		for _, body := range bodies {
			body.ApplyForceAtLocalPoint(f, cp.Vector{})
		}
	}

	if input.Rotate != 0 {
		applyCouple(bodies, input.Rotate*tuning.RotationForce)
	}
}

// applyCouple applies tangential forces about the bodies' shared center of
// mass: net force cancels, net torque does not. Positive scale spins the
// assembly clockwise in screen coordinates.
func applyCouple(bodies []*cp.Body, scale float64) {
	var com cp.Vector
	for _, body := range bodies {
		com = com.Add(body.Position())
	}
	com = com.Mult(1 / float64(len(bodies)))

	for _, body := range bodies {
		r := body.Position().Sub(com)
		if r.Length() < 1e-6 {
			continue
		}
		tangent := cp.Vector{X: -r.Y, Y: r.X}.Normalize()
		body.ApplyForceAtWorldPoint(tangent.Mult(scale), body.Position())
	}
}

func activeBlockBodies(w *ecs.World) []*cp.Body {
	var bodies []*cp.Body
	for _, e := range w.Query(component.BlockComponent.Kind(), component.RigidBodyComponent.Kind()) {
		block, ok := ecs.Get(w, e, component.BlockComponent)
		if !ok || !block.Active {
			continue
		}
		rb, ok := ecs.Get(w, e, component.RigidBodyComponent)
		if !ok || rb.Body == nil {
			continue
		}
		bodies = append(bodies, rb.Body)
	}
	return bodies
}
