package mutate

import "math/rand/v2"

// Source yields uniform ints in [0, n). *rand.Rand satisfies it; tests
// substitute a scripted source.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic PCG-backed source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
