package flexvec

import "fmt"

// Index scans the index range shared by all vectors in vs from left to
// right and returns the first index at which pred succeeds. The scan is
// bounded by the shortest vector. The boolean result is false when no
// index satisfies pred. It panics when vs is empty.
func Index[T any](pred func(xs ...T) bool, vs ...*FlexVector[T]) (int, bool) {
	n := sharedLen("index", vs)
	xs := make([]T, len(vs))
	for i := 0; i < n; i++ {
		if pred(row(vs, i, xs)...) {
			return i, true
		}
	}
	return 0, false
}

// IndexRight is Index scanning from right to left. All vectors must have
// equal lengths; it panics otherwise.
func IndexRight[T any](pred func(xs ...T) bool, vs ...*FlexVector[T]) (int, bool) {
	n := equalLen("index-right", vs)
	xs := make([]T, len(vs))
	for i := n - 1; i >= 0; i-- {
		if pred(row(vs, i, xs)...) {
			return i, true
		}
	}
	return 0, false
}

// Skip returns the first index in the shared range at which pred fails.
// It panics when vs is empty.
func Skip[T any](pred func(xs ...T) bool, vs ...*FlexVector[T]) (int, bool) {
	return Index(func(xs ...T) bool { return !pred(xs...) }, vs...)
}

// SkipRight is Skip scanning from right to left. All vectors must have
// equal lengths; it panics otherwise.
func SkipRight[T any](pred func(xs ...T) bool, vs ...*FlexVector[T]) (int, bool) {
	return IndexRight(func(xs ...T) bool { return !pred(xs...) }, vs...)
}

// BinarySearch locates needle within the optional [start, end) range,
// which must already be sorted in ascending order per cmp. cmp is a
// three-way comparator over (element, needle): negative when the element
// orders before the needle, zero on a match, positive after. On success
// it returns a matching index; when several elements match, which one is
// unspecified. On failure it returns the position where needle would be
// inserted to keep the range sorted, and false. The result is undefined
// if the range is not sorted.
func (fv *FlexVector[T]) BinarySearch(needle T, cmp func(elem, needle T) int, bounds ...int) (int, bool) {
	lo, hi := fv.span("binary-search", bounds)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := cmp(fv.buf[mid], needle)
		switch {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// sharedLen returns the length of the shortest vector in vs.
// It panics when vs is empty or contains a nil vector.
func sharedLen[T any](op string, vs []*FlexVector[T]) int {
	if len(vs) == 0 {
		panic(fmt.Sprintf("flexvec: %s: at least one flexvector required", op))
	}
	n := -1
	for i, v := range vs {
		if v == nil {
			panic(fmt.Sprintf("flexvec: %s: nil flexvector at argument %d", op, i))
		}
		if n < 0 || v.length < n {
			n = v.length
		}
	}
	return n
}

// equalLen returns the common length of vs, panicking on a mismatch.
func equalLen[T any](op string, vs []*FlexVector[T]) int {
	n := sharedLen(op, vs)
	for i, v := range vs {
		if v.length != n {
			panic(fmt.Sprintf("flexvec: %s: length mismatch: argument %d has length %d, want %d", op, i, v.length, n))
		}
	}
	return n
}

// row gathers the i-th element of every vector into xs, which is reused
// across iterations to avoid per-step allocation.
func row[T any](vs []*FlexVector[T], i int, xs []T) []T {
	for j, v := range vs {
		xs[j] = v.buf[i]
	}
	return xs
}
