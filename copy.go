package flexvec

import "fmt"

// Copy returns a new vector holding the elements in the optional
// [start, end) range. The result owns a freshly allocated buffer.
func (fv *FlexVector[T]) Copy(bounds ...int) *FlexVector[T] {
	start, end := fv.span("copy", bounds)
	out := make([]T, end-start)
	copy(out, fv.buf[start:end])
	return &FlexVector[T]{buf: out, length: end - start}
}

// ReverseCopy returns a new vector holding the elements in the optional
// [start, end) range in reverse order.
func (fv *FlexVector[T]) ReverseCopy(bounds ...int) *FlexVector[T] {
	start, end := fv.span("reverse-copy", bounds)
	n := end - start
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = fv.buf[end-1-i]
	}
	return &FlexVector[T]{buf: out, length: n}
}

// Reverse returns a reversed copy of the whole vector.
func (fv *FlexVector[T]) Reverse() *FlexVector[T] {
	return fv.ReverseCopy()
}

// CopyInto writes from's optional [start, end) range into fv starting at
// index at. When the copy lands past fv's current end, fv grows to
// at + (end - start). When from is fv itself the operation behaves as if
// the source range were snapshotted before any write. at must lie in
// [0, Len()]; it panics otherwise.
func (fv *FlexVector[T]) CopyInto(at int, from *FlexVector[T], bounds ...int) {
	if from == nil {
		panic("flexvec: copy-into: nil source flexvector")
	}
	start, end := from.span("copy-into", bounds)
	fv.checkInsert("copy-into", at)
	n := end - start
	if n == 0 {
		return
	}
	if at+n > fv.length {
		fv.ensureCap(at + n)
		fv.length = at + n
	}
	// The builtin copy is a memmove: overlapping source and destination
	// within the same buffer transfer correctly in either direction.
	copy(fv.buf[at:at+n], from.buf[start:end])
}

// ReverseCopyInto is CopyInto with the transfer order reversed: the last
// element of the source range lands at index at.
func (fv *FlexVector[T]) ReverseCopyInto(at int, from *FlexVector[T], bounds ...int) {
	if from == nil {
		panic("flexvec: reverse-copy-into: nil source flexvector")
	}
	start, end := from.span("reverse-copy-into", bounds)
	fv.checkInsert("reverse-copy-into", at)
	n := end - start
	if n == 0 {
		return
	}
	src := from.buf[start:end]
	if fv == from {
		// Reversal cannot be made overlap-safe by direction choice alone;
		// snapshot the source range instead.
		tmp := make([]T, n)
		copy(tmp, src)
		src = tmp
	}
	if at+n > fv.length {
		fv.ensureCap(at + n)
		fv.length = at + n
	}
	for i := 0; i < n; i++ {
		fv.buf[at+i] = src[n-1-i]
	}
}

// Concat returns a new vector holding the concatenated contents of vs.
// The destination is allocated once, sized to the summed lengths.
func Concat[T any](vs ...*FlexVector[T]) *FlexVector[T] {
	total := 0
	for i, v := range vs {
		if v == nil {
			panic(fmt.Sprintf("flexvec: concat: nil flexvector at argument %d", i))
		}
		total += v.length
	}
	out := &FlexVector[T]{buf: make([]T, total)}
	for _, v := range vs {
		copy(out.buf[out.length:], v.buf[:v.length])
		out.length += v.length
	}
	return out
}
