package flexvec

import "fmt"

// PushBack appends xs at the end of the vector, growing capacity as needed.
// Appending a single element is amortized O(1).
func (fv *FlexVector[T]) PushBack(xs ...T) {
	if len(xs) == 0 {
		return
	}
	fv.ensureCap(fv.length + len(xs))
	copy(fv.buf[fv.length:], xs)
	fv.length += len(xs)
}

// PushFront inserts xs at the start of the vector, shifting all existing
// elements. Cost is O(Len()).
func (fv *FlexVector[T]) PushFront(xs ...T) {
	fv.Insert(0, xs...)
}

// Insert places xs at index i, shifting the elements at indexes >= i toward
// the back. i may equal Len(), in which case Insert behaves like PushBack.
// It panics if i is outside [0, Len()]. Cost is O(Len() - i + len(xs)).
func (fv *FlexVector[T]) Insert(i int, xs ...T) {
	fv.checkInsert("insert", i)
	n := len(xs)
	if n == 0 {
		return
	}
	fv.ensureCap(fv.length + n)
	copy(fv.buf[i+n:fv.length+n], fv.buf[i:fv.length])
	copy(fv.buf[i:], xs)
	fv.length += n
}

// RemoveAt deletes and returns the element at index i, shifting the
// elements after it toward the front. It panics if i is out of range.
// Cost is O(Len() - i).
func (fv *FlexVector[T]) RemoveAt(i int) T {
	fv.checkIndex("remove-at", i)
	x := fv.buf[i]
	copy(fv.buf[i:], fv.buf[i+1:fv.length])
	fv.length--
	clear(fv.buf[fv.length : fv.length+1]) // release the vacated slot
	return x
}

// RemoveFront deletes and returns the first element.
// It panics if the vector is empty.
func (fv *FlexVector[T]) RemoveFront() T {
	if fv.length == 0 {
		panic("flexvec: remove-front: empty flexvector")
	}
	return fv.RemoveAt(0)
}

// RemoveBack deletes and returns the last element without shifting.
// It panics if the vector is empty.
func (fv *FlexVector[T]) RemoveBack() T {
	if fv.length == 0 {
		panic("flexvec: remove-back: empty flexvector")
	}
	return fv.RemoveAt(fv.length - 1)
}

// RemoveRange deletes the elements in [start, end) in a single shift pass.
// The range is clamped to [0, Len()]. Cost is O(Len() - start).
func (fv *FlexVector[T]) RemoveRange(start, end int) {
	start, end = fv.span("remove-range", []int{start, end})
	n := end - start
	if n == 0 {
		return
	}
	copy(fv.buf[start:], fv.buf[end:fv.length])
	clear(fv.buf[fv.length-n : fv.length])
	fv.length -= n
}

// Clear removes all elements. Capacity is retained.
func (fv *FlexVector[T]) Clear() {
	clear(fv.buf[:fv.length])
	fv.length = 0
}

// Extend appends the contents of each vector in others, in order, to fv.
// The destination grows at most once. Passing fv itself duplicates its
// contents as of the call.
func (fv *FlexVector[T]) Extend(others ...*FlexVector[T]) {
	if len(others) == 0 {
		return
	}
	lens := make([]int, len(others))
	total := fv.length
	for i, o := range others {
		if o == nil {
			panic(fmt.Sprintf("flexvec: extend: nil flexvector at argument %d", i))
		}
		lens[i] = o.length
		total += o.length
	}
	fv.ensureCap(total)
	for i, o := range others {
		copy(fv.buf[fv.length:], o.buf[:lens[i]])
		fv.length += lens[i]
	}
}

// ReverseInPlace reverses the element order within the existing buffer.
func (fv *FlexVector[T]) ReverseInPlace() {
	for i, j := 0, fv.length-1; i < j; i, j = i+1, j-1 {
		fv.buf[i], fv.buf[j] = fv.buf[j], fv.buf[i]
	}
}
