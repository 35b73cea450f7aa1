// Package testutil provides testing utilities for flexvec.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded random number generator for producing reproducible
// element data:
//
//	rng := testutil.NewRNG(seed)
//	ints := rng.Ints(1000, 100)   // 1000 ints in [0, 100)
//	perm := rng.Perm(1000)        // a permutation of [0, 1000)
package testutil
