package flexvec

import (
	"container/list"
	"fmt"
	"iter"
)

// FromSlice returns a new vector holding a copy of s. The vector never
// aliases s.
func FromSlice[T any](s []T) *FlexVector[T] {
	buf := make([]T, len(s))
	copy(buf, s)
	return &FlexVector[T]{buf: buf, length: len(s)}
}

// ToSlice returns the elements as a freshly allocated slice.
func (fv *FlexVector[T]) ToSlice() []T {
	out := make([]T, fv.length)
	copy(out, fv.buf[:fv.length])
	return out
}

// FromList returns a new vector holding the values of l in list order.
// Every element must be a T; it panics on a type mismatch.
func FromList[T any](l *list.List) *FlexVector[T] {
	fv := WithCapacity[T](l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		x, ok := e.Value.(T)
		if !ok {
			panic(fmt.Sprintf("flexvec: from-list: element %v (%T) does not have the expected type", e.Value, e.Value))
		}
		fv.PushBack(x)
	}
	return fv
}

// ToList returns the elements as a new container/list in index order.
func (fv *FlexVector[T]) ToList() *list.List {
	l := list.New()
	for i := 0; i < fv.length; i++ {
		l.PushBack(fv.buf[i])
	}
	return l
}

// FromString returns a new vector holding the runes of s in order.
func FromString(s string) *FlexVector[rune] {
	runes := []rune(s)
	return &FlexVector[rune]{buf: runes, length: len(runes)}
}

// ToString returns the runes of fv as a string.
func ToString(fv *FlexVector[rune]) string {
	return string(fv.buf[:fv.length])
}

// FromSeq drains the pull-based producer seq eagerly into a new vector,
// growing with the same doubling policy as PushBack. seq must be finite.
func FromSeq[T any](seq iter.Seq[T]) *FlexVector[T] {
	fv := WithCapacity[T](0)
	for x := range seq {
		fv.PushBack(x)
	}
	return fv
}

// Values returns a pull-based producer over the elements in index order.
// The vector must not be mutated while the sequence is being consumed.
func (fv *FlexVector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < fv.length; i++ {
			if !yield(fv.buf[i]) {
				return
			}
		}
	}
}

// All returns an index/value producer over the elements in index order.
// The vector must not be mutated while the sequence is being consumed.
func (fv *FlexVector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < fv.length; i++ {
			if !yield(i, fv.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an index/value producer over the elements in reverse
// index order.
func (fv *FlexVector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := fv.length - 1; i >= 0; i-- {
			if !yield(i, fv.buf[i]) {
				return
			}
		}
	}
}

// Unfold builds a vector by iterating a seed: while stop(seed) is false it
// appends mapper(seed) and advances the seed with successor. Elements
// accumulate at the back using the standard growth policy.
func Unfold[S, T any](stop func(seed S) bool, mapper func(seed S) T, successor func(seed S) S, seed S) *FlexVector[T] {
	fv := WithCapacity[T](0)
	for !stop(seed) {
		fv.PushBack(mapper(seed))
		seed = successor(seed)
	}
	return fv
}

// UnfoldRight is Unfold with elements accumulating at the front: the first
// element produced ends up last. The result is built back-to-front in
// O(n) by reversing once at the end.
func UnfoldRight[S, T any](stop func(seed S) bool, mapper func(seed S) T, successor func(seed S) S, seed S) *FlexVector[T] {
	fv := Unfold(stop, mapper, successor, seed)
	fv.ReverseInPlace()
	return fv
}
