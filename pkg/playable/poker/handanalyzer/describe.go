package handanalyzer

import (
	"fmt"
	"zarena/pkg/deck"

	"github.com/paulhankin/poker"
)

// toLibraryCard converts a card to the representation used by github.com/paulhankin/poker
// The library ranks aces as 1.
func toLibraryCard(c deck.Card) (poker.Card, error) {
	var pc poker.Card
	var s poker.Suit
	switch c.Suit {
	case deck.Hearts:
		s = poker.Heart
	case deck.Spades:
		s = poker.Spade
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	default:
		return pc, fmt.Errorf("invalid suit: %d", c.Suit)
	}

	return poker.MakeCard(s, poker.Rank(c.AceLowRank()))
}

// Describe returns a human readable name of the best hand in cards, e.g. "two pair, kings and fours"
func Describe(cards []deck.Card) (string, error) {
	pcs := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := toLibraryCard(c)
		if err != nil {
			return "", err
		}

		pcs[i] = pc
	}

	return poker.Describe(pcs)
}
