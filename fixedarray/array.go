package fixedarray

import (
	"fmt"
	"iter"
)

// Array is a fixed capacity block of slots, each of which is either live or
// vacant. It is not safe for concurrent mutation.
type Array[T any] struct {
	slots []T
	live  []byte
	count int
}

func checkCapacity(capacity int) {
	if capacity <= 0 {
		panic(ErrZeroCapacity)
	}
	if capacity > MaxCapacity {
		panic(fmt.Errorf("%w: %d", ErrCapacityTooLarge, capacity))
	}
}

// New allocates an array with every slot vacant.
func New[T any](capacity int) *Array[T] {
	checkCapacity(capacity)
	return &Array[T]{
		slots: make([]T, capacity),
		live:  make([]byte, bitmapBytes(capacity)),
	}
}

// Fill allocates an array and constructs every slot, in index order, from fn.
func Fill[T any](capacity int, fn func(i int) T) *Array[T] {
	a := New[T](capacity)
	for i := range a.slots {
		a.Write(i, fn(i))
	}
	return a
}

// TryFill is Fill for a fallible constructor. If fn fails the values
// constructed so far are dropped, the storage is released and the error is
// returned unchanged.
func TryFill[T any](capacity int, fn func(i int) (T, error)) (*Array[T], error) {
	a := New[T](capacity)
	for i := range a.slots {
		v, err := fn(i)
		if err != nil {
			a.Dealloc()
			return nil, err
		}
		a.Write(i, v)
	}
	return a, nil
}

// Len returns the capacity. It is 0 after Dealloc.
func (a *Array[T]) Len() int { return len(a.slots) }

// Live returns the number of live slots.
func (a *Array[T]) Live() int { return a.count }

func (a *Array[T]) checkIndex(i int) {
	if i < 0 || i >= len(a.slots) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(a.slots)))
	}
}

// IsLive reports whether slot i holds a value.
func (a *Array[T]) IsLive(i int) bool {
	a.checkIndex(i)
	return testBitLSB0(a.live, i)
}

// Get returns a copy of the value in slot i, and false if the slot is vacant.
func (a *Array[T]) Get(i int) (T, bool) {
	if !a.IsLive(i) {
		var zero T
		return zero, false
	}
	return a.slots[i], true
}

// Ptr returns a pointer to the value in slot i, or nil if the slot is vacant.
// The pointer is valid until the slot is taken, replaced or the array is
// deallocated.
func (a *Array[T]) Ptr(i int) *T {
	if !a.IsLive(i) {
		return nil
	}
	return &a.slots[i]
}

// Write constructs v into the vacant slot i.
func (a *Array[T]) Write(i int, v T) {
	if a.IsLive(i) {
		panic(fmt.Errorf("%w: %d", ErrSlotOccupied, i))
	}
	a.slots[i] = v
	setBitLSB0(a.live, i)
	a.count++
}

// Replace stores v in slot i and returns the prior value, if there was one.
// The prior value is not dropped.
func (a *Array[T]) Replace(i int, v T) (T, bool) {
	if !a.IsLive(i) {
		a.Write(i, v)
		var zero T
		return zero, false
	}
	old := a.slots[i]
	a.slots[i] = v
	return old, true
}

// Take moves the value out of slot i, leaving it vacant.
func (a *Array[T]) Take(i int) T {
	if !a.IsLive(i) {
		panic(fmt.Errorf("%w: %d", ErrSlotVacant, i))
	}
	v := a.slots[i]
	a.vacate(i)
	return v
}

// Transplant moves the live slot from of a into the vacant slot to of dst.
func (a *Array[T]) Transplant(dst *Array[T], from, to int) {
	if dst == a {
		panic(ErrSameArray)
	}
	if dst.IsLive(to) {
		panic(fmt.Errorf("%w: %d", ErrSlotOccupied, to))
	}
	dst.Write(to, a.Take(from))
}

// DropInPlace drops the value in slot i and leaves the slot vacant. It does
// nothing if the slot is already vacant.
func (a *Array[T]) DropInPlace(i int) {
	if !a.IsLive(i) {
		return
	}
	drop(&a.slots[i])
	a.vacate(i)
}

// Dealloc drops every live slot and releases the storage. The array has zero
// capacity afterwards. Calling Dealloc more than once is harmless.
func (a *Array[T]) Dealloc() {
	for i := range a.slots {
		if a.count == 0 {
			break
		}
		a.DropInPlace(i)
	}
	a.slots = nil
	a.live = nil
	a.count = 0
}

// All yields the live slots in index order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.slots {
			if !testBitLSB0(a.live, i) {
				continue
			}
			if !yield(i, a.slots[i]) {
				return
			}
		}
	}
}

func (a *Array[T]) vacate(i int) {
	var zero T
	a.slots[i] = zero
	clearBitLSB0(a.live, i)
	a.count--
}

func drop[T any](p *T) {
	if d, ok := any(*p).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}
}
