package mesh

import "github.com/emirpasic/gods/stacks/arraystack"

// arena stores one element kind in a flat slice addressed by index.
// Released slots are overwritten with a tombstone and pushed on a free
// stack; insert reuses the most recently released slot first.
type arena[T any] struct {
	slots []T
	live  []bool
	free  *arraystack.Stack // of int
	tomb  T
	count int
}

func newArena[T any](tomb T) *arena[T] {
	return &arena[T]{free: arraystack.New(), tomb: tomb}
}

// insert stores x and returns its slot index. O(1) amortized.
func (a *arena[T]) insert(x T) int {
	if top, ok := a.free.Pop(); ok {
		i := top.(int)
		a.slots[i] = x
		a.live[i] = true
		a.count++
		return i
	}
	a.slots = append(a.slots, x)
	a.live = append(a.live, true)
	a.count++
	return len(a.slots) - 1
}

// has reports whether i addresses a live slot.
func (a *arena[T]) has(i int) bool {
	return i >= 0 && i < len(a.live) && a.live[i]
}

// release tombstones slot i. It reports false when i was not live.
func (a *arena[T]) release(i int) bool {
	if !a.has(i) {
		return false
	}
	a.slots[i] = a.tomb
	a.live[i] = false
	a.free.Push(i)
	a.count--
	return true
}

// indices returns the live slot indices in ascending order.
func (a *arena[T]) indices() []int {
	out := make([]int, 0, a.count)
	for i, ok := range a.live {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// clone deep-copies slots, liveness and the free stack (keeping its order).
func (a *arena[T]) clone() *arena[T] {
	c := &arena[T]{
		slots: append([]T(nil), a.slots...),
		live:  append([]bool(nil), a.live...),
		free:  arraystack.New(),
		tomb:  a.tomb,
		count: a.count,
	}
	// Values lists top first; push bottom first to rebuild the same stack.
	vals := a.free.Values()
	for i := len(vals) - 1; i >= 0; i-- {
		c.free.Push(vals[i])
	}
	return c
}
