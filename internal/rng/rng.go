// Package rng provides the seeded draw source behind dataset generation.
//
// The source is passed explicitly to every generator stage; there are no
// package-level generators. Determinism contract: the same seed yields the
// same sequence of draws, and the generator stages consume draws in a
// fixed documented order, so the same seed yields byte-identical output.
package rng

import "math/rand/v2"

// Source wraps a PCG-seeded generator. Not safe for concurrent use, which
// is fine: generation is strictly single-threaded.
type Source struct {
	r *rand.Rand
}

// New creates a source seeded from a single configuration value.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed))}
}

// IntBetween returns a uniform integer in [lo, hi] inclusive.
// Panics if hi < lo.
func (s *Source) IntBetween(lo, hi int) int {
	return lo + s.r.IntN(hi-lo+1)
}

// Float64Between returns a uniform float in [lo, hi).
func (s *Source) Float64Between(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Pick returns a uniformly drawn element of xs.
func Pick[T any](s *Source, xs []T) T {
	return xs[s.r.IntN(len(xs))]
}

// SampleInts draws k distinct integers from 1..n without replacement,
// in draw order. Partial Fisher-Yates over a fresh 1..n slice: only the
// first k positions are shuffled, so the draw cost is O(n) setup + O(k).
func (s *Source) SampleInts(n, k int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	for i := 0; i < k; i++ {
		j := i + s.r.IntN(n-i)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids[:k]
}

// Weighted pairs a value with its probability mass.
type Weighted[T any] struct {
	Value T
	P     float64
}

// Choose draws from an explicit discrete distribution. Probabilities
// should sum to 1; the final entry absorbs any floating point remainder.
func Choose[T any](s *Source, dist []Weighted[T]) T {
	u := s.r.Float64()
	cum := 0.0
	for _, w := range dist {
		cum += w.P
		if u < cum {
			return w.Value
		}
	}
	return dist[len(dist)-1].Value
}
