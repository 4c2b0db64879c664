package system

import (
	"github.com/milk9111/blockfall/ecs"
	"github.com/milk9111/blockfall/ecs/component"
)

// PhysicsSystem steps the Chipmunk space once per frame and copies body
// poses back into render transforms.
type PhysicsSystem struct {
	dt float64
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{dt: 1.0 / 60.0}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	pw.Step(ps.dt)

	ecs.ForEach(w, component.RigidBodyComponent, func(e ecs.Entity, rb *component.RigidBody) {
		if rb.Body == nil {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		pos := rb.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Rotation = rb.Body.Angle()
	})
}
