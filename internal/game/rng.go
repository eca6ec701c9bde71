package game

import (
	"crypto/rand"
	"math/big"
)

// Rand is the random source behind outcome selection, rotation variety
// and win codes. It is an explicit dependency so tests can force draws
// and so the generator quality is a deployment choice, not a hidden
// global.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). n must be > 0.
	IntN(n int) int
}

// CryptoRand draws from crypto/rand.
type CryptoRand struct{}

const float64Precision = 1 << 53

func (CryptoRand) Float64() float64 {
	n, err := rand.Int(rand.Reader, big.NewInt(float64Precision))
	if err != nil {
		// crypto/rand failing means the platform entropy source is
		// broken; there is no safe fallback draw.
		panic("game: crypto/rand failed: " + err.Error())
	}
	return float64(n.Int64()) / float64Precision
}

func (CryptoRand) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("game: crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}
