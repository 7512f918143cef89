package slot

import (
	cryptoRand "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// RandomSource yields uniform integers in [0, n)
type RandomSource interface {
	IntN(n int) int
}

// crypto random: default for live play
type cryptoRNG struct{}

func (cryptoRNG) IntN(n int) int {
	v, err := cryptoRand.Int(cryptoRand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// fall back to math/rand/v2 global source
		return rand.IntN(n)
	}
	return int(v.Int64())
}

// DefaultRNG returns the crypto-backed source used when no seed is given
func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG for simulations and tests
type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a deterministic PCG source
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) IntN(n int) int { return s.r.IntN(n) }

// Draw spins every reel independently and uniformly over symbolCount codes
func Draw(rng RandomSource, symbolCount int) Reels {
	if rng == nil {
		rng = DefaultRNG()
	}
	if symbolCount < 1 {
		symbolCount = 1
	}
	var r Reels
	for i := range r {
		r[i] = Symbol(rng.IntN(symbolCount) + 1)
	}
	return r
}
