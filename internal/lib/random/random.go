// Package random wraps the draws used by the data synthesizers around an injectable source,
// so generation is reproducible when seeded.
package random

import "math/rand/v2"

// Source is the subset of *rand.Rand the synthesizers draw from.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// New returns a PCG-backed source. A zero seed picks a random one.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // synthetic data
	}
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // synthetic data
}

// IntRange draws uniformly from [lo, hi], both ends included.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Uniform draws a float uniformly from [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Weighted picks an index of weights with probability proportional to its weight.
// Non-positive weights are never picked. It returns -1 when no weight is positive.
func Weighted(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}

	pick := src.IntN(total)
	for idx, w := range weights {
		if w <= 0 {
			continue
		}
		if pick < w {
			return idx
		}
		pick -= w
	}

	return len(weights) - 1
}

// Choice returns a uniformly chosen element of items. items must not be empty.
func Choice[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
