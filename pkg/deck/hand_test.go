package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(MustCardFromString("14s"))
	h.AddCard(MustCardFromString("3c"))
	h.AddCard(MustCardFromString("10d"))
	h.AddCard(MustCardFromString("3h"))
	h.AddCard(MustCardFromString("2s"))
	assert.Equal(t, "2s,3c,3h,10d,14s", h.String())
}

func TestNewHand(t *testing.T) {
	h := NewHand(MustCardsFromString("13c,2d,9h")...)
	assert.Equal(t, "2d,9h,13c", h.String())
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []int{2 + 45, 9, 13 + 30}, h.Codes())
}

func TestHand_Clone(t *testing.T) {
	hand := NewHand(MustCardsFromString("2c,3c")...)
	clone := hand.Clone()
	clone.AddCard(MustCardFromString("4c"))
	assert.Equal(t, 2, hand.Len())
	assert.Equal(t, 3, clone.Len())
}
