package handanalyzer

import (
	"errors"
	"fmt"
	"sort"
	"zarena/pkg/deck"
)

// HandSize is the number of cards in an evaluated hand
const HandSize = 5

// ErrHandSize is returned when a hand cannot be evaluated because of the number of cards
var ErrHandSize = errors.New("hand must contain exactly five cards")

type rankGroup struct {
	rank  int
	count int
}

// HandAnalyzer holds the result of analyzing exactly five cards
type HandAnalyzer struct {
	cards    deck.Hand
	groups   []rankGroup
	flush    bool
	straight int
	strength Strength
}

// New analyzes five cards
// The cards do not need to be sorted; the analyzer keeps its own ascending copy
func New(cards []deck.Card) (*HandAnalyzer, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}

	h := &HandAnalyzer{
		cards: deck.NewHand(cards...),
	}

	h.analyzeHand()
	h.strength = h.calculateStrength()
	return h, nil
}

// Evaluate returns the strength of exactly five cards
func Evaluate(cards []deck.Card) (Strength, error) {
	h, err := New(cards)
	if err != nil {
		return nil, err
	}

	return h.GetStrength(), nil
}

// analyzeHand counts occurrences per rank and per suit
func (h *HandAnalyzer) analyzeHand() {
	var rankCounts [deck.MaxRank + 1]int
	suitCounts := make(map[deck.Suit]int)

	for _, card := range h.cards {
		rankCounts[card.Rank]++
		suitCounts[card.Suit]++
	}

	for rank := deck.MaxRank; rank >= deck.MinRank; rank-- {
		if rankCounts[rank] > 0 {
			h.groups = append(h.groups, rankGroup{rank: rank, count: rankCounts[rank]})
		}
	}

	// larger groups are more significant; equal groups keep descending rank order
	sort.SliceStable(h.groups, func(i, j int) bool {
		return h.groups[i].count > h.groups[j].count
	})

	h.flush = len(suitCounts) == 1
	h.straight = h.checkStraight()
}

// checkStraight returns the top card of a straight, or 0
// The ace may play low only in the wheel (2,3,4,5,A), where the top card is 5
func (h *HandAnalyzer) checkStraight() int {
	if len(h.groups) != HandSize {
		return 0
	}

	low := h.cards[0].Rank
	high := h.cards[HandSize-1].Rank
	if high-low == HandSize-1 {
		return high
	}

	if high == deck.Ace && h.cards[HandSize-2].Rank == 5 && low == 2 {
		return 5
	}

	return 0
}

func (h *HandAnalyzer) groupRanks() []int {
	ranks := make([]int, len(h.groups))
	for i, g := range h.groups {
		ranks[i] = g.rank
	}

	return ranks
}

func (h *HandAnalyzer) calculateStrength() Strength {
	hand := h.GetHand()

	switch hand {
	case StraightFlush, Straight:
		return Strength{int(hand), h.straight}
	default:
		// groups are already ordered by significance: the larger set first, then kickers high to low
		return append(Strength{int(hand)}, h.groupRanks()...)
	}
}

// GetHand returns the category of the hand
func (h *HandAnalyzer) GetHand() Hand {
	top := h.groups[0].count
	second := 0
	if len(h.groups) > 1 {
		second = h.groups[1].count
	}

	switch {
	case top == 5:
		return FiveOfAKind
	case h.straight > 0 && h.flush:
		return StraightFlush
	case top == 4:
		return FourOfAKind
	case top == 3 && second == 2:
		return FullHouse
	case h.flush:
		return Flush
	case h.straight > 0:
		return Straight
	case top == 3:
		return ThreeOfAKind
	case top == 2 && second == 2:
		return TwoPair
	case top == 2:
		return OnePair
	}

	return HighCard
}

// GetStrength returns the strength vector of the hand
func (h *HandAnalyzer) GetStrength() Strength {
	s := make(Strength, len(h.strength))
	copy(s, h.strength)
	return s
}

// GetCards returns the analyzed cards in ascending rank order
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.cards.Clone()
}
