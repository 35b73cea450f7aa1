// Package flexvec provides FlexVector, a growable, contiguous, mutable
// sequence type for Go.
//
// A FlexVector is the dynamic counterpart of a fixed-length array:
//
//   - O(1) random access via Ref and Set
//   - Amortized O(1) insertion and removal at the back
//   - O(n) positional insertion and removal anywhere else
//   - A library of constructors, searches, folds, maps, filters, and
//     conversions built on those primitives
//
// # Quick Start
//
// Create, mutate, and read a vector:
//
//	fv := flexvec.New(1, 2, 3)
//	fv.PushBack(4, 5)
//	fv.Insert(1, 99)     // [1 99 2 3 4 5]
//	x := fv.RemoveAt(1)  // x == 99
//	fmt.Println(fv.Ref(0), fv.Len(), fv.Cap())
//
// Higher-order operations generic over a second type are package
// functions, since Go methods cannot introduce type parameters:
//
//	sum := flexvec.Fold(func(acc int, xs ...int) int {
//	    return acc + xs[0]
//	}, 0, fv)
//
//	doubled := flexvec.Map(func(xs ...int) int {
//	    return 2 * xs[0]
//	}, fv)
//
// Multi-vector forms of Fold, Map, ForEach, Count, Index, and Skip iterate
// over the index range shared by all arguments, bounded by the shortest.
//
// # Capacity
//
// The backing buffer doubles when full, so pushing N elements at the back
// performs O(N) total copying. Capacity never shrinks automatically; call
// ShrinkToFit to release slack explicitly.
//
// # Errors
//
// Caller contract violations panic: an out-of-range index, an insertion
// point outside [0, Len()], an inverted range after clamping, or a list
// element of the wrong type. Search misses are not errors; they are
// reported through a second boolean result.
//
// # Concurrency
//
// FlexVector is not synchronized. A vector must not be mutated while
// another goroutine reads it, and the callbacks passed to MapInPlace and
// FilterInPlace must not touch the vector being rebuilt.
package flexvec
