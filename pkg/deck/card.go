package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit int

// suit constants
const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// Suits lists every suit in code order
var Suits = []Suit{Hearts, Spades, Clubs, Diamonds}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// rank bounds for a standard deck
const (
	MinRank = 2
	MaxRank = Ace
)

// codeBase is the multiplier applied to the suit when a card is encoded as an integer
const codeBase = 15

// Card is an individual playing card
// Cards are values and are never modified after they are created
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card after validating the rank and suit
func NewCard(rank int, suit Suit) (Card, error) {
	if rank < MinRank || rank > MaxRank {
		return Card{}, fmt.Errorf("invalid rank: %d", rank)
	}

	if suit < Hearts || suit > Diamonds {
		return Card{}, fmt.Errorf("invalid suit: %d", suit)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	}

	return "?"
}

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	return rank + c.Suit.String()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// Code returns the integer form of the card used in observations
func (c Card) Code() int {
	return int(c.Suit)*codeBase + c.Rank
}

// CardFromCode decodes the integer form returned by Code()
func CardFromCode(code int) (Card, error) {
	if code <= 0 {
		return Card{}, fmt.Errorf("invalid card code: %d", code)
	}

	card, err := NewCard(code%codeBase, Suit(code/codeBase))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card code %d: %w", code, err)
	}

	return card, nil
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([hscd])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [hscd]
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %s", s)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		return Card{}, fmt.Errorf("could not parse card `%s`: %w", s, err)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustCardFromString is CardFromString, but panics on a malformed card
// Only tests and constant tables should use this
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, cs := range cardStrings {
		card, err := CardFromString(strings.TrimSpace(cs))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// MustCardsFromString is CardsFromString, but panics on a malformed card
func MustCardsFromString(s string) []Card {
	cards, err := CardsFromString(s)
	if err != nil {
		panic(err)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Hearts:
		suit = "h"
	case Spades:
		suit = "s"
	case Clubs:
		suit = "c"
	case Diamonds:
		suit = "d"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
