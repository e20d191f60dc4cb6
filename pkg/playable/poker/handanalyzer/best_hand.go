package handanalyzer

import (
	"fmt"
	"zarena/pkg/deck"
)

// MaxCards is the most cards BestHand accepts (two hole cards plus five community cards)
const MaxCards = 7

// BestHand picks the strongest five-card hand out of five to seven cards
// When several subsets tie, the first one found is kept, so the result is stable for the same input order
func BestHand(cards []deck.Card) (deck.Hand, Strength, error) {
	n := len(cards)
	if n < HandSize || n > MaxCards {
		return nil, nil, fmt.Errorf("%w: cannot pick a hand from %d cards", ErrHandSize, n)
	}

	var bestCards deck.Hand
	var best Strength

	subset := make([]deck.Card, HandSize)
	var choose func(start, k int) error
	choose = func(start, k int) error {
		if k == HandSize {
			h, err := New(subset)
			if err != nil {
				return err
			}

			if s := h.GetStrength(); best == nil || s.Beats(best) {
				best = s
				bestCards = h.GetCards()
			}

			return nil
		}

		for i := start; i <= n-(HandSize-k); i++ {
			subset[k] = cards[i]
			if err := choose(i+1, k+1); err != nil {
				return err
			}
		}

		return nil
	}

	if err := choose(0, 0); err != nil {
		return nil, nil, err
	}

	return bestCards, best, nil
}
