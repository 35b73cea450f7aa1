package flexvec

// Equal reports whether all vectors in vs hold pairwise-equal elements per
// eq. All vectors must have the same length and eq must succeed at every
// index for every adjacent pair of arguments; the order in which pairs are
// compared is unspecified. Zero or one argument is vacuously equal.
func Equal[T any](eq func(a, b T) bool, vs ...*FlexVector[T]) bool {
	if len(vs) < 2 {
		return true
	}
	first := vs[0]
	for _, v := range vs[1:] {
		if v.length != first.length {
			return false
		}
	}
	for k := 0; k < len(vs)-1; k++ {
		a, b := vs[k], vs[k+1]
		for i := 0; i < a.length; i++ {
			if !eq(a.buf[i], b.buf[i]) {
				return false
			}
		}
	}
	return true
}
