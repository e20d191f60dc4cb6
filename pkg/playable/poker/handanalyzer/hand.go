package handanalyzer

import "fmt"

// Hand is a poker hand category, i.e., full house
// The numeric value is the first element of a Strength
type Hand int

// Constants for hand
const (
	HighCard Hand = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	// FiveOfAKind can only be formed when five cards share a rank, which a single
	// 52-card deck never produces. It ranks above every standard hand.
	FiveOfAKind
)

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		return fmt.Sprintf("Unknown hand (%d)", int(h))
	}
}
