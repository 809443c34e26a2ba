package deck

import (
	"math/rand/v2"
)

// NewRand returns a generator seeded with seed. A zero seed draws the seed
// from the runtime's entropy source.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes items in place with the Fisher-Yates algorithm. Every
// permutation is equally likely given a uniform rng.
func Shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
