package flexvec_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/flexvec"
)

func TestIndex(t *testing.T) {
	t.Run("first match wins", func(t *testing.T) {
		fv := flexvec.New(5, 10, 15, 10)
		i, ok := flexvec.Index(func(xs ...int) bool { return xs[0] == 10 }, fv)
		require.True(t, ok)
		assert.Equal(t, 1, i)
	})

	t.Run("not found", func(t *testing.T) {
		fv := flexvec.New(1, 2, 3)
		_, ok := flexvec.Index(func(xs ...int) bool { return xs[0] > 99 }, fv)
		assert.False(t, ok)
	})

	t.Run("multiple vectors bounded by shortest", func(t *testing.T) {
		a := flexvec.New(1, 2, 3, 4)
		b := flexvec.New(1, 9, 3)
		i, ok := flexvec.Index(func(xs ...int) bool { return xs[0] != xs[1] }, a, b)
		require.True(t, ok)
		assert.Equal(t, 1, i)

		// A mismatch beyond the shared range is never observed.
		c := flexvec.New(1, 2)
		_, ok = flexvec.Index(func(xs ...int) bool { return xs[0] != xs[1] }, a, c)
		assert.False(t, ok)
	})

	t.Run("no vectors panics", func(t *testing.T) {
		assert.Panics(t, func() {
			flexvec.Index(func(xs ...int) bool { return true })
		})
	})
}

func TestIndexRight(t *testing.T) {
	t.Run("last match wins", func(t *testing.T) {
		fv := flexvec.New(5, 10, 15, 10)
		i, ok := flexvec.IndexRight(func(xs ...int) bool { return xs[0] == 10 }, fv)
		require.True(t, ok)
		assert.Equal(t, 3, i)
	})

	t.Run("unequal lengths panic", func(t *testing.T) {
		a := flexvec.New(1, 2, 3)
		b := flexvec.New(1, 2)
		assert.Panics(t, func() {
			flexvec.IndexRight(func(xs ...int) bool { return true }, a, b)
		})
	})
}

func TestSkip(t *testing.T) {
	t.Run("first failure", func(t *testing.T) {
		fv := flexvec.New(2, 4, 5, 6)
		i, ok := flexvec.Skip(func(xs ...int) bool { return xs[0]%2 == 0 }, fv)
		require.True(t, ok)
		assert.Equal(t, 2, i)
	})

	t.Run("all satisfy", func(t *testing.T) {
		fv := flexvec.New(2, 4, 6)
		_, ok := flexvec.Skip(func(xs ...int) bool { return xs[0]%2 == 0 }, fv)
		assert.False(t, ok)
	})

	t.Run("skip right", func(t *testing.T) {
		fv := flexvec.New(1, 2, 4, 8)
		i, ok := flexvec.SkipRight(func(xs ...int) bool { return xs[0]%2 == 0 }, fv)
		require.True(t, ok)
		assert.Equal(t, 0, i)
	})
}

func TestBinarySearch(t *testing.T) {
	t.Run("finds an element", func(t *testing.T) {
		fv := flexvec.New(1, 3, 5, 7, 9)
		i, ok := fv.BinarySearch(5, cmp.Compare)
		require.True(t, ok)
		assert.Equal(t, 2, i)
	})

	t.Run("miss returns insertion position", func(t *testing.T) {
		fv := flexvec.New(1, 3, 5, 7, 9)
		i, ok := fv.BinarySearch(4, cmp.Compare)
		assert.False(t, ok)
		assert.Equal(t, 2, i)

		i, ok = fv.BinarySearch(10, cmp.Compare)
		assert.False(t, ok)
		assert.Equal(t, 5, i)
	})

	t.Run("sub-range search", func(t *testing.T) {
		fv := flexvec.New(9, 1, 3, 5, 0)
		i, ok := fv.BinarySearch(3, cmp.Compare, 1, 4)
		require.True(t, ok)
		assert.Equal(t, 2, i)
	})

	t.Run("tie may return any matching index", func(t *testing.T) {
		fv := flexvec.New(1, 2, 2, 2, 3)
		i, ok := fv.BinarySearch(2, cmp.Compare)
		require.True(t, ok)
		assert.Equal(t, 2, fv.Ref(i))
	})

	t.Run("unsorted input does not corrupt the vector", func(t *testing.T) {
		fv := flexvec.New(5, 1, 4, 2)
		fv.BinarySearch(4, cmp.Compare)
		assert.Equal(t, []int{5, 1, 4, 2}, fv.ToSlice())
	})

	t.Run("empty range", func(t *testing.T) {
		fv := flexvec.New[int]()
		i, ok := fv.BinarySearch(1, cmp.Compare)
		assert.False(t, ok)
		assert.Equal(t, 0, i)
	})
}
