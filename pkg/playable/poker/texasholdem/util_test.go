package texasholdem

import (
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"testing"
	"zarena/pkg/deck"
	"zarena/pkg/playable/poker/action"
)

// firstCard always draws the top card so tests can stack the deck
type firstCard struct{}

func (firstCard) Intn(int) int {
	return 0
}

func setupTable(opts Options, stakes ...int) *Table {
	if opts.Rand == nil {
		opts.Rand = firstCard{}
	}

	table, err := New(logrus.StandardLogger(), stakes, opts)
	if err != nil {
		panic(err)
	}

	return table
}

// setHoles replaces the hole cards of each seat, e.g. setHoles(table, "14s,14h", "2c,7d")
func setHoles(table *Table, holes ...string) {
	for i, hole := range holes {
		table.participants[i].hole = deck.NewHand(deck.MustCardsFromString(hole)...)
	}
}

// stackDeck replaces the undealt cards so the next draws are the given cards in order
func stackDeck(table *Table, cards string) {
	table.deck.Cards = deck.MustCardsFromString(cards)
}

func assertStep(t *testing.T, table *Table, a action.Action, msgAndArgs ...interface{}) ([]int, bool) {
	t.Helper()

	_, rewards, done, err := table.Step(a, true)
	assert.NoError(t, err, msgAndArgs...)
	assert.Len(t, rewards, len(table.participants), msgAndArgs...)

	return rewards, done
}

func assertStepFailed(t *testing.T, table *Table, a action.Action, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()

	_, rewards, done, err := table.Step(a, true)
	assert.EqualError(t, err, expectedErr, msgAndArgs...)
	assert.Nil(t, rewards, msgAndArgs...)
	assert.False(t, done, msgAndArgs...)
}

func assertLegal(t *testing.T, table *Table, expected []action.Action, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, expected, table.LegalActions(), msgAndArgs...)
}

func postBlinds(t *testing.T, table *Table) {
	t.Helper()
	assertLegal(t, table, []action.Action{action.SmallBlind}, "small blind is forced")
	assertStep(t, table, action.SmallBlind)
}

func sumCredits(table *Table) int {
	total := 0
	for _, p := range table.participants {
		total += p.credits
	}

	return total
}
