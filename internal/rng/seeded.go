package rng

import (
	"math/rand"
	"time"
)

// Seeded wraps math/rand with a known seed so a sequence of draws can be replayed
type Seeded struct {
	seed int64
	rand *rand.Rand
}

// NewSeeded returns a replayable generator
// A seed of 0 picks a time-based seed, which can be read back with Seed()
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}
