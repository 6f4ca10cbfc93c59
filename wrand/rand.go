package wrand

import "math/rand"

// Rand is a seedable uniform-real PRNG wrapper. The zero value is not
// usable; construct with New.
type Rand struct {
	r *rand.Rand
}

// New builds a Rand seeded deterministically from seed.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(int64(seed)))}
}

// Uniform draws a float64 uniformly from [min, max).
func (r *Rand) Uniform(min, max float64) float64 {
	return min + r.r.Float64()*(max-min)
}

// UniformIntIn draws a float64 uniformly from the half-open range
// [min, max) and truncates it toward zero, matching the source this
// package was ported from (`random_in_range(0f64, 5f64) as usize`).
// Called with UniformIntIn(0, 5) to pick among 6 equally-weighted
// alternatives (e.g. a neighbor direction 0..5), the half-open upper
// bound means index 5 is never actually drawn. This bias is preserved
// intentionally, not patched; see rand_test.go for a test documenting
// it.
func (r *Rand) UniformIntIn(min, max float64) int {
	return int(r.Uniform(min, max))
}

// Bernoulli returns true with probability p (p in [0,1]).
func (r *Rand) Bernoulli(p float64) bool {
	return r.r.Float64() < p
}
