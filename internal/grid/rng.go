package grid

import "math/rand/v2"

// NewRNG returns a deterministic rand source for the provided seed, so a
// -seed flag reproduces the same maze exactly.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
