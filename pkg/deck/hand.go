package deck

// Hand represents a collection of cards ordered by ascending rank
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

// AddCard inserts the card after any cards of lower or equal rank
func (h *Hand) AddCard(card Card) {
	cards := *h
	i := len(cards)
	for i > 0 && cards[i-1].Rank > card.Rank {
		i--
	}

	cards = append(cards, Card{})
	copy(cards[i+1:], cards[i:])
	cards[i] = card
	*h = cards
}

// NewHand returns a sorted hand from the cards
func NewHand(cards ...Card) Hand {
	h := make(Hand, 0, len(cards))
	for _, card := range cards {
		h.AddCard(card)
	}

	return h
}

// Codes returns the integer form of each card, in hand order
func (h Hand) Codes() []int {
	codes := make([]int, len(h))
	for i, c := range h {
		codes[i] = c.Code()
	}

	return codes
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
