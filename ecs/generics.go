package ecs

import "github.com/milk9111/blockfall/ecs/component"

func Add[T any](w *World, e Entity, handle component.Handle[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.Store(handle.Kind()).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.Handle[T]) bool {
	return w.Store(handle.Kind()).Remove(e)
}

func Has[T any](w *World, e Entity, handle component.Handle[T]) bool {
	return w.Store(handle.Kind()).Has(e)
}

func Get[T any](w *World, e Entity, handle component.Handle[T]) (*T, bool) {
	value := w.Store(handle.Kind()).Get(e)
	if value == nil {
		return nil, false
	}
	cast, ok := value.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// ForEach visits every entity holding the component. The callback may mutate
// the component but must not add or remove components of the same kind.
func ForEach[T any](w *World, handle component.Handle[T], fn func(e Entity, v *T)) {
	s := w.Store(handle.Kind())
	entities := s.Entities()
	values := s.Values()
	for i, e := range entities {
		if v, ok := values[i].(*T); ok {
			fn(e, v)
		}
	}
}
