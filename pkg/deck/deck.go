package deck

import (
	"errors"
	"zarena/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents the undealt cards of a round
type Deck struct {
	Cards []Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of 52 cards.
// Cards are drawn at random using the provided generator, so the deck does not need shuffling
func New(gen rng.Generator) *Deck {
	d := &Deck{
		rng: gen,
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for rank := MinRank; rank <= MaxRank; rank++ {
		for _, suit := range Suits {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Draw removes and returns a uniformly random card from the deck
// If there are no more cards, an ErrEndOfDeck is returned. The deck is never reconstituted.
func (d *Deck) Draw() (Card, error) {
	n := len(d.Cards)
	if n <= 0 {
		return Card{}, ErrEndOfDeck
	}

	i := d.rng.Intn(n)
	card := d.Cards[i]

	// preserve the order of the remaining cards so a seeded generator replays identically
	copy(d.Cards[i:], d.Cards[i+1:])
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Clone returns a copy of the deck that shares the random source
func (d *Deck) Clone() *Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)

	return &Deck{
		Cards: cards,
		rng:   d.rng,
	}
}
