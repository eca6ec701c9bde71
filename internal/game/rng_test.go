package game

import "math/rand/v2"

// stubRand forces specific draws.
type stubRand struct {
	f float64
	n int
}

func (s stubRand) Float64() float64 { return s.f }
func (s stubRand) IntN(n int) int {
	if s.n < n {
		return s.n
	}
	return n - 1
}

// seededRand gives reproducible pseudo-random draws for statistical
// tests. *rand.Rand satisfies the Rand interface directly.
func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
