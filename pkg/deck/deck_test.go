package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"zarena/internal/rng"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	d := New(rng.NewSeeded(1))

	a.Equal(52, d.CardsLeft())

	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		a.False(seen[card], "duplicate card %s", card)
		seen[card] = true
	}

	a.Equal(52, len(seen))
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)
	d := New(rng.NewSeeded(7))

	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	drawn := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		a.NoError(err)
		a.False(drawn[card], "card %s drawn twice", card)
		drawn[card] = true
		a.Equal(51-i, d.CardsLeft())
	}

	a.False(d.CanDraw(1))

	card, err := d.Draw()
	a.Equal(ErrEndOfDeck, err)
	a.Equal(Card{}, card)

	// not silently resupplied
	a.Equal(0, d.CardsLeft())
}

func TestDeck_Draw_replayable(t *testing.T) {
	a := assert.New(t)
	d1 := New(rng.NewSeeded(99))
	d2 := New(rng.NewSeeded(99))

	for i := 0; i < 10; i++ {
		c1, err := d1.Draw()
		a.NoError(err)
		c2, err := d2.Draw()
		a.NoError(err)
		a.Equal(c1, c2)
	}
}

func TestDeck_Clone(t *testing.T) {
	a := assert.New(t)
	d := New(rng.NewSeeded(3))
	clone := d.Clone()

	_, err := d.Draw()
	a.NoError(err)
	a.Equal(51, d.CardsLeft())
	a.Equal(52, clone.CardsLeft())
}
