package handanalyzer

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
	"zarena/pkg/deck"
)

func TestBestHand(t *testing.T) {
	assertBestHand := func(t *testing.T, cards, expectedCards string, expected Strength) {
		t.Helper()

		h, s, err := BestHand(deck.MustCardsFromString(cards))
		assert.NoError(t, err)
		assert.Equal(t, expectedCards, h.String())
		assert.Equal(t, expected, s)
	}

	// hole cards do not play
	assertBestHand(t, "2c,3d,10c,10d,10h,11s,11c", "10c,10d,10h,11s,11c", Strength{7, 10, 11})

	// wheel straight
	assertBestHand(t, "14d,9c,2c,3d,4h,5s,13c", "2c,3d,4h,5s,14d", Strength{5, 5})

	// flush over straight
	assertBestHand(t, "2h,9h,10h,11c,12h,13h,8d", "2h,9h,10h,12h,13h", Strength{6, 13, 12, 10, 9, 2})

	// straight flush picks the highest run
	assertBestHand(t, "9s,10s,11s,12s,13s,14s,8s", "10s,11s,12s,13s,14s", Strength{9, 14})

	// six cards (incomplete board)
	assertBestHand(t, "14c,14d,3h,7s,9c,14h", "7s,9c,14c,14d,14h", Strength{4, 14, 9, 7})

	// exactly five cards
	assertBestHand(t, "2c,5d,8h,11s,13c", "2c,5d,8h,11s,13c", Strength{1, 13, 11, 8, 5, 2})
}

func TestBestHand_idempotent(t *testing.T) {
	a := assert.New(t)
	cards := deck.MustCardsFromString("13c,13d,4h,4s,9c,9d,2s")

	h1, s1, err := BestHand(cards)
	a.NoError(err)
	h2, s2, err := BestHand(cards)
	a.NoError(err)

	a.Equal(h1, h2)
	a.Equal(s1, s2)
	a.Equal(Strength{3, 13, 9, 4}, s1)

	// the input is not modified
	a.Equal("13c,13d,4h,4s,9c,9d,2s", deck.CardsToString(cards))
}

func TestBestHand_invalidSize(t *testing.T) {
	_, _, err := BestHand(deck.MustCardsFromString("2c,3c,4c,5c"))
	assert.True(t, errors.Is(err, ErrHandSize))

	_, _, err = BestHand(deck.MustCardsFromString("2c,3c,4c,5c,6c,7c,8c,9c"))
	assert.True(t, errors.Is(err, ErrHandSize))
}
