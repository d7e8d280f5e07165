package core

import "math/rand/v2"

// Rand is the randomness a simulation draws from. *rand.Rand satisfies it, and
// tests substitute scripted sources to pin exact fill sequences.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRNG creates a deterministic PCG-backed generator for the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Chance reports whether a draw from r falls within probability p.
// A draw exactly equal to p counts as a hit.
func Chance(r Rand, p float64) bool {
	return r.Float64() <= p
}
