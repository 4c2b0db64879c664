package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
)

// Kind identifies a component type. Kinds are allocated process-wide when
// component handles are declared.
type Kind uint32

var nextKind atomic.Uint32

// Handle pairs a component type with its kind id. Declare one package-level
// handle per component type.
type Handle[T any] struct {
	kind Kind
}

func NewComponent[T any]() Handle[T] {
	return Handle[T]{kind: Kind(nextKind.Add(1))}
}

func (h Handle[T]) Kind() Kind {
	return h.kind
}

func (h Handle[T]) Valid() bool {
	return h.kind != 0
}
