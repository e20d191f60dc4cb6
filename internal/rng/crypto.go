package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto wraps the crypto/rand library
// Draws from Crypto cannot be replayed; use NewSeeded for deterministic rounds
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}

	return int(b.Int64())
}
