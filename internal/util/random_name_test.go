package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"zarena/internal/rng"
)

type sequence struct {
	values []int
	i      int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.i%len(s.values)] % n
	s.i++
	return v
}

func TestGetRandomName(t *testing.T) {
	gen := &sequence{values: []int{6, 9, 27, 11}}
	assert.Equal(t, "Waiving Lion", GetRandomName(gen))
	assert.Equal(t, "Jumping Bear", GetRandomName(gen))
}

func TestSeatNames(t *testing.T) {
	a := assert.New(t)

	// the repeated draw is replaced with the next one
	gen := &sequence{values: []int{0, 0, 0, 0, 1, 1}}
	a.Equal([]string{"Fast Dog", "Slow Cat"}, SeatNames(gen, 2))

	names := SeatNames(rng.NewSeeded(3), 10)
	a.Len(names, 10)
	seen := make(map[string]bool)
	for _, name := range names {
		a.False(seen[name], name)
		seen[name] = true
	}
}
