package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	var gen Generator = Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		n := gen.Intn(4)
		a.True(n >= 0 && n < 4)
		found[n] = true
	}

	a.Len(found, 4)
	a.Equal(0, gen.Intn(1))
}
