package flexvec

import "fmt"

// FlexVector is a growable, contiguous, mutable sequence of elements of
// type T. It provides O(1) random access, amortized O(1) insertion and
// removal at the back, and O(n) positional insertion and removal.
//
// A FlexVector exclusively owns its backing buffer: constructors and
// copying operations always allocate, and no two FlexVector values ever
// share storage. The zero value is an empty vector ready to use.
//
// FlexVector is not safe for concurrent use. Callers that mutate a vector
// from multiple goroutines must provide their own synchronization.
type FlexVector[T any] struct {
	buf    []T // len(buf) is the physical capacity
	length int // slots [0, length) hold live values
}

// New creates a FlexVector holding the given items.
func New[T any](items ...T) *FlexVector[T] {
	fv := WithCapacity[T](len(items))
	fv.PushBack(items...)
	return fv
}

// Make creates a FlexVector of the given length with every slot set to fill.
func Make[T any](length int, fill T) *FlexVector[T] {
	if length < 0 {
		panic(fmt.Sprintf("flexvec: make: negative length %d", length))
	}
	buf := make([]T, length)
	for i := range buf {
		buf[i] = fill
	}
	return &FlexVector[T]{buf: buf, length: length}
}

// WithCapacity creates an empty FlexVector with preallocated capacity.
func WithCapacity[T any](capacity int) *FlexVector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &FlexVector[T]{buf: make([]T, capacity)}
}

// Len returns the number of elements.
func (fv *FlexVector[T]) Len() int { return fv.length }

// Cap returns the physical capacity of the backing buffer.
func (fv *FlexVector[T]) Cap() int { return len(fv.buf) }

// IsEmpty reports whether the vector contains no elements.
func (fv *FlexVector[T]) IsEmpty() bool { return fv.length == 0 }

// Ref returns the element at index i.
// It panics if i is out of range.
func (fv *FlexVector[T]) Ref(i int) T {
	fv.checkIndex("ref", i)
	return fv.buf[i]
}

// Front returns the first element. It panics if the vector is empty.
func (fv *FlexVector[T]) Front() T {
	fv.checkIndex("front", 0)
	return fv.buf[0]
}

// Back returns the last element. It panics if the vector is empty.
func (fv *FlexVector[T]) Back() T {
	fv.checkIndex("back", fv.length-1)
	return fv.buf[fv.length-1]
}

// Set replaces the element at index i with x and returns the previous value.
// It panics if i is out of range.
func (fv *FlexVector[T]) Set(i int, x T) T {
	fv.checkIndex("set", i)
	prev := fv.buf[i]
	fv.buf[i] = x
	return prev
}

// Swap exchanges the elements at indexes i and j.
// It panics if either index is out of range.
func (fv *FlexVector[T]) Swap(i, j int) {
	fv.checkIndex("swap", i)
	fv.checkIndex("swap", j)
	fv.buf[i], fv.buf[j] = fv.buf[j], fv.buf[i]
}

// Fill sets every slot in the optional [start, end) range to x.
// The range defaults to the whole vector and is clamped to [0, Len()].
func (fv *FlexVector[T]) Fill(x T, bounds ...int) {
	start, end := fv.span("fill", bounds)
	for i := start; i < end; i++ {
		fv.buf[i] = x
	}
}

// ShrinkToFit reallocates the backing buffer to exactly Len() slots.
// Capacity never shrinks automatically; this is an explicit optimization.
func (fv *FlexVector[T]) ShrinkToFit() {
	if fv.length == len(fv.buf) {
		return
	}
	shrunk := make([]T, fv.length)
	copy(shrunk, fv.buf[:fv.length])
	fv.buf = shrunk
}

// ensureCap grows the backing buffer until it holds at least n slots.
// Capacity doubles on each growth step, which keeps back-insertion
// amortized O(1): total copying across N pushes is a geometric series.
func (fv *FlexVector[T]) ensureCap(n int) {
	if n <= len(fv.buf) {
		return
	}
	newCap := len(fv.buf)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < n {
		newCap *= 2
	}
	grown := make([]T, newCap)
	copy(grown, fv.buf[:fv.length])
	fv.buf = grown
}

// span resolves optional [start, end) bounds: defaults to [0, length),
// clamps both into [0, length], and panics if the clamped range is inverted.
func (fv *FlexVector[T]) span(op string, bounds []int) (start, end int) {
	start, end = 0, fv.length
	switch len(bounds) {
	case 0:
	case 1:
		start = bounds[0]
	case 2:
		start, end = bounds[0], bounds[1]
	default:
		panic(fmt.Sprintf("flexvec: %s: expected at most 2 bounds, got %d", op, len(bounds)))
	}
	start = clampIndex(start, fv.length)
	end = clampIndex(end, fv.length)
	if end < start {
		panic(fmt.Sprintf("flexvec: %s: invalid range [%d, %d)", op, start, end))
	}
	return start, end
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

// checkIndex panics unless i addresses a live slot.
func (fv *FlexVector[T]) checkIndex(op string, i int) {
	if i < 0 || i >= fv.length {
		panic(fmt.Sprintf("flexvec: %s: index %d out of range with length %d", op, i, fv.length))
	}
}

// checkInsert panics unless i is a valid insertion point, which includes
// the one-past-the-end position.
func (fv *FlexVector[T]) checkInsert(op string, i int) {
	if i < 0 || i > fv.length {
		panic(fmt.Sprintf("flexvec: %s: insertion point %d out of range with length %d", op, i, fv.length))
	}
}
