package picker

import "math"

// Shuffle returns a uniformly random permutation of names. The input is not modified.
//
// It keeps a working set of the positions not yet drawn. Each step picks one of the
// remaining positions, emits its name, and moves the last remaining position into
// the consumed slot so the next draw is uniform over what is left.
func Shuffle(names []string, rng RandomSource) []string {
	if rng == nil {
		rng = DefaultRNG()
	}
	n := len(names)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	out := make([]string, 0, n)
	for remaining := n; remaining > 0; remaining-- {
		k := pickIndex(rng, remaining)
		out = append(out, names[idx[k]])
		idx[k] = idx[remaining-1]
	}
	return out
}

// pickIndex scales r in [0,1) to [0, n). Sources that may return exactly 1 are clamped.
func pickIndex(rng RandomSource, n int) int {
	k := int(math.Floor(rng.Float64() * float64(n)))
	if k >= n {
		k = n - 1
	}
	if k < 0 {
		k = 0
	}
	return k
}
