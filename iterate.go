package flexvec

// Fold combines the elements of vs from left to right: the accumulator
// starts at seed and fn is applied at index 0, 1, ... over the index range
// shared by all vectors (bounded by the shortest). Application order is
// strict left-to-right. It panics when vs is empty.
func Fold[A, T any](fn func(acc A, xs ...T) A, seed A, vs ...*FlexVector[T]) A {
	n := sharedLen("fold", vs)
	xs := make([]T, len(vs))
	acc := seed
	for i := 0; i < n; i++ {
		acc = fn(acc, row(vs, i, xs)...)
	}
	return acc
}

// FoldRight is Fold with strict right-to-left application order, starting
// at the last index of the shared range.
func FoldRight[A, T any](fn func(acc A, xs ...T) A, seed A, vs ...*FlexVector[T]) A {
	n := sharedLen("fold-right", vs)
	xs := make([]T, len(vs))
	acc := seed
	for i := n - 1; i >= 0; i-- {
		acc = fn(acc, row(vs, i, xs)...)
	}
	return acc
}

// FoldIndex is Fold with the index passed as the first callback argument.
// Application order is strict left-to-right.
func FoldIndex[A, T any](fn func(i int, acc A, xs ...T) A, seed A, vs ...*FlexVector[T]) A {
	n := sharedLen("fold-index", vs)
	xs := make([]T, len(vs))
	acc := seed
	for i := 0; i < n; i++ {
		acc = fn(i, acc, row(vs, i, xs)...)
	}
	return acc
}

// Map returns a new vector whose i-th element is fn applied to the i-th
// elements of vs, over the shared index range. The order in which fn is
// applied across indexes is unspecified; callers must not rely on it.
// It panics when vs is empty.
func Map[T, U any](fn func(xs ...T) U, vs ...*FlexVector[T]) *FlexVector[U] {
	n := sharedLen("map", vs)
	xs := make([]T, len(vs))
	out := make([]U, n)
	for i := 0; i < n; i++ {
		out[i] = fn(row(vs, i, xs)...)
	}
	return &FlexVector[U]{buf: out, length: n}
}

// MapIndex is Map with the index passed as the first callback argument.
func MapIndex[T, U any](fn func(i int, xs ...T) U, vs ...*FlexVector[T]) *FlexVector[U] {
	n := sharedLen("map-index", vs)
	xs := make([]T, len(vs))
	out := make([]U, n)
	for i := 0; i < n; i++ {
		out[i] = fn(i, row(vs, i, xs)...)
	}
	return &FlexVector[U]{buf: out, length: n}
}

// ForEach applies fn to the i-th elements of vs for every index in the
// shared range, in strict left-to-right order. It panics when vs is empty.
func ForEach[T any](fn func(xs ...T), vs ...*FlexVector[T]) {
	n := sharedLen("for-each", vs)
	xs := make([]T, len(vs))
	for i := 0; i < n; i++ {
		fn(row(vs, i, xs)...)
	}
}

// ForEachIndex is ForEach with the index passed as the first callback
// argument.
func ForEachIndex[T any](fn func(i int, xs ...T), vs ...*FlexVector[T]) {
	n := sharedLen("for-each-index", vs)
	xs := make([]T, len(vs))
	for i := 0; i < n; i++ {
		fn(i, row(vs, i, xs)...)
	}
}

// Count returns how many indexes in the shared range satisfy pred.
// It panics when vs is empty.
func Count[T any](pred func(xs ...T) bool, vs ...*FlexVector[T]) int {
	n := sharedLen("count", vs)
	xs := make([]T, len(vs))
	count := 0
	for i := 0; i < n; i++ {
		if pred(row(vs, i, xs)...) {
			count++
		}
	}
	return count
}

// Any reports whether pred succeeds at some index in the shared range.
// It short-circuits on the first success and is false over an empty range.
func Any[T any](pred func(xs ...T) bool, vs ...*FlexVector[T]) bool {
	_, ok := Index(pred, vs...)
	return ok
}

// Every reports whether pred succeeds at every index in the shared range.
// It short-circuits on the first failure and is vacuously true over an
// empty range.
func Every[T any](pred func(xs ...T) bool, vs ...*FlexVector[T]) bool {
	_, failed := Skip(pred, vs...)
	return !failed
}

// Cumulate returns a vector of the intermediate accumulator values of a
// left fold over fv: the i-th result element is fn applied to the (i-1)-th
// result element (seed for i == 0) and fv's i-th element.
func Cumulate[A, T any](fn func(acc A, x T) A, seed A, fv *FlexVector[T]) *FlexVector[A] {
	out := make([]A, fv.length)
	acc := seed
	for i := 0; i < fv.length; i++ {
		acc = fn(acc, fv.buf[i])
		out[i] = acc
	}
	return &FlexVector[A]{buf: out, length: fv.length}
}

// Each applies fn to every element in index order.
func (fv *FlexVector[T]) Each(fn func(x T)) {
	for i := 0; i < fv.length; i++ {
		fn(fv.buf[i])
	}
}

// MapInPlace replaces every element with fn applied to it. The order in
// which slots are visited is unspecified; fn must not read or mutate the
// vector being rebuilt, since partially rewritten state would otherwise be
// observable.
func (fv *FlexVector[T]) MapInPlace(fn func(x T) T) {
	// Single forward pass: every slot is read before it is overwritten.
	for i := 0; i < fv.length; i++ {
		fv.buf[i] = fn(fv.buf[i])
	}
}

// MapIndexInPlace is MapInPlace with the index passed to the callback.
func (fv *FlexVector[T]) MapIndexInPlace(fn func(i int, x T) T) {
	for i := 0; i < fv.length; i++ {
		fv.buf[i] = fn(i, fv.buf[i])
	}
}

// Filter returns a new vector holding, in order, the elements satisfying
// pred.
func (fv *FlexVector[T]) Filter(pred func(x T) bool) *FlexVector[T] {
	out := WithCapacity[T](0)
	for i := 0; i < fv.length; i++ {
		if pred(fv.buf[i]) {
			out.PushBack(fv.buf[i])
		}
	}
	return out
}

// FilterInPlace keeps only the elements satisfying pred, preserving their
// relative order and compacting the buffer in a single forward pass. pred
// must not read or mutate the vector being rebuilt. Vacated slots are
// released for garbage collection.
func (fv *FlexVector[T]) FilterInPlace(pred func(x T) bool) {
	w := 0
	for r := 0; r < fv.length; r++ {
		if pred(fv.buf[r]) {
			fv.buf[w] = fv.buf[r]
			w++
		}
	}
	clear(fv.buf[w:fv.length])
	fv.length = w
}

// Partition splits fv into two new vectors: the first holds the elements
// satisfying pred, the second the rest. Relative order is preserved in
// both.
func (fv *FlexVector[T]) Partition(pred func(x T) bool) (yes, no *FlexVector[T]) {
	yes, no = WithCapacity[T](0), WithCapacity[T](0)
	for i := 0; i < fv.length; i++ {
		if pred(fv.buf[i]) {
			yes.PushBack(fv.buf[i])
		} else {
			no.PushBack(fv.buf[i])
		}
	}
	return yes, no
}
