package ecs

import "github.com/milk9111/blockfall/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, and system order.
type World struct {
	entities entityStore
	stores   map[component.Kind]*SparseSet
	systems  []System
	events   EventQueue

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.Kind]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes all of an entity's components and kills the handle.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Store returns the storage for a component kind, creating it if needed.
func (w *World) Store(k component.Kind) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.Kind]*SparseSet)
	}
	s, ok := w.stores[k]
	if !ok {
		s = &SparseSet{}
		w.stores[k] = s
	}
	return s
}

// Query returns entities that have every listed component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if len(kinds) == 0 {
		return nil
	}
	smallest := w.Store(kinds[0])
	for _, k := range kinds[1:] {
		if s := w.Store(k); s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		for _, k := range kinds {
			if !w.Store(k).Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns an arbitrary entity holding the component kind.
func (w *World) First(k component.Kind) (Entity, bool) {
	s := w.Store(k)
	if s.Len() == 0 {
		return 0, false
	}
	return s.Entities()[0], true
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then discards the frame's events.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
