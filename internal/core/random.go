package core

import "math/rand"

// Rand is a seeded source of uniform draws used for platform placement.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a deterministic random source from seed.
func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value drawn uniformly from [min, max].
// When min == max the bound itself is returned.
func (r *Rand) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.rng.Float64()*(max-min)
}
