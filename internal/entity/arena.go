// internal/entity/arena.go
package entity

import "ribbon-defense/internal/types"

type slot[T any] struct {
	value      *T
	generation uint32
	alive      bool
}

// Arena — реестр сущностей со стабильными хендлами.
// Освобождённый слот переиспользуется с новым поколением, поэтому
// устаревший Handle никогда не разрешается в чужую сущность.
// Итерация идёт в порядке вставки.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	order []types.Handle
}

func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v *T) types.Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	s.generation++
	s.value = v
	s.alive = true
	h := types.Handle{Index: idx, Generation: s.generation}
	a.order = append(a.order, h)
	return h
}

// Get resolves h. It fails for handles whose entity was removed,
// even if the slot has since been reused.
func (a *Arena[T]) Get(h types.Handle) (*T, bool) {
	if h.IsNil() || int(h.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.Index]
	if !s.alive || s.generation != h.Generation {
		return nil, false
	}
	return s.value, true
}

// Each calls fn for every live entity in insertion order.
func (a *Arena[T]) Each(fn func(types.Handle, *T)) {
	for _, h := range a.order {
		fn(h, a.slots[h.Index].value)
	}
}

// Sweep removes every entity for which dead returns true and returns
// the handles it released.
func (a *Arena[T]) Sweep(dead func(*T) bool) []types.Handle {
	var removed []types.Handle
	kept := a.order[:0]
	for _, h := range a.order {
		if dead(a.slots[h.Index].value) {
			a.release(h.Index)
			removed = append(removed, h)
			continue
		}
		kept = append(kept, h)
	}
	a.order = kept
	return removed
}

// Clear releases every entity. Outstanding handles become stale.
func (a *Arena[T]) Clear() {
	for _, h := range a.order {
		a.release(h.Index)
	}
	a.order = a.order[:0]
}

func (a *Arena[T]) Len() int {
	return len(a.order)
}

func (a *Arena[T]) release(idx uint32) {
	s := &a.slots[idx]
	s.value = nil
	s.alive = false
	a.free = append(a.free, idx)
}
