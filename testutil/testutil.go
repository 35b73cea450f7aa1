package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Intn returns, as an int, a pseudo-random number in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns num pseudo-random ints in [0, max).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(num, max int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, num)
	for i := range out {
		out[i] = r.rand.Intn(max)
	}
	return out
}

// Perm returns a pseudo-random permutation of the integers [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Runes returns num pseudo-random lowercase ASCII letters.
func (r *RNG) Runes(num int) []rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]rune, num)
	for i := range out {
		out[i] = rune('a' + r.rand.Intn(26))
	}
	return out
}
