package potmanager

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
	"zarena/pkg/playable/poker/handanalyzer"
)

func in(id, amount int) Contribution {
	return Contribution{ID: id, Amount: amount, InHand: true}
}

func folded(id, amount int) Contribution {
	return Contribution{ID: id, Amount: amount, InHand: false}
}

func assertPot(t *testing.T, pot *Pot, amount int, eligible ...int) {
	t.Helper()
	assert.Equal(t, amount, pot.Amount)
	assert.Equal(t, eligible, pot.Eligible)
}

func TestPotManager_Sweep_noAllIn(t *testing.T) {
	a := assert.New(t)
	pm := New()

	a.NoError(pm.Sweep([]Contribution{in(0, 10), in(1, 10), folded(2, 5)}, false))
	a.NoError(pm.Sweep([]Contribution{in(0, 25), folded(1, 0), folded(2, 0)}, false))

	pots := pm.Pots()
	a.Equal(1, len(pots))
	assertPot(t, pots[0], 50, 0)
	a.Equal(50, pots.Total())
	a.Equal(50, pm.Swept())
}

func TestPotManager_Sweep_emptyRound(t *testing.T) {
	a := assert.New(t)
	pm := New()

	a.NoError(pm.Sweep([]Contribution{in(0, 10), in(1, 10)}, false))
	a.NoError(pm.Sweep([]Contribution{in(0, 0), in(1, 0)}, true))

	pots := pm.Pots()
	a.Equal(1, len(pots))
	assertPot(t, pots[0], 20, 0, 1)
}

func TestPotManager_Sweep_simpleAllIn(t *testing.T) {
	a := assert.New(t)
	pm := New()

	// player 2 is all-in for 5, everyone else calls 10
	a.NoError(pm.Sweep([]Contribution{in(0, 10), in(1, 10), in(2, 5), in(3, 10)}, true))

	pots := pm.Pots()
	a.Equal(2, len(pots))
	assertPot(t, pots[0], 20, 0, 1, 2, 3)
	assertPot(t, pots[1], 15, 0, 1, 3)
	a.Equal(35, pots.Total())
}

func TestPotManager_Sweep_complexAllIn(t *testing.T) {
	a := assert.New(t)
	pm := New()

	a.NoError(pm.Sweep([]Contribution{in(0, 10), in(1, 10)}, false))
	a.NoError(pm.Sweep([]Contribution{in(0, 5), in(1, 15), in(2, 10), in(3, 15), folded(4, 12)}, true))

	pots := pm.Pots()
	a.Equal(3, len(pots))
	assertPot(t, pots[0], 20+25, 0, 1, 2, 3)
	assertPot(t, pots[1], 20, 1, 2, 3)
	assertPot(t, pots[2], 12, 1, 3)
	a.Equal(77, pots.Total())
	a.Equal(77, pm.Swept())
}

func TestPotManager_Sweep_sharedAllInLevel(t *testing.T) {
	a := assert.New(t)
	pm := New()

	// two players share the same all-in level
	a.NoError(pm.Sweep([]Contribution{in(0, 50), in(1, 50), in(2, 200), in(3, 200)}, true))

	pots := pm.Pots()
	a.Equal(2, len(pots))
	assertPot(t, pots[0], 200, 0, 1, 2, 3)
	assertPot(t, pots[1], 300, 2, 3)
}

func TestPotManager_Sweep_foldedAboveTopLevel(t *testing.T) {
	a := assert.New(t)
	pm := New()

	a.NoError(pm.Sweep([]Contribution{in(0, 30), in(1, 20), folded(2, 40)}, true))

	pots := pm.Pots()
	a.Equal(2, len(pots))
	assertPot(t, pots[0], 60, 0, 1)
	assertPot(t, pots[1], 30, 0)
	a.Equal(90, pots.Total())
}

func TestPotManager_Sweep_negative(t *testing.T) {
	pm := New()
	assert.EqualError(t, pm.Sweep([]Contribution{in(0, -1)}, false), "participant 0 has a negative bet of -1")
}

func TestPotManager_PayWinners(t *testing.T) {
	a := assert.New(t)
	pm := New()
	a.NoError(pm.Sweep([]Contribution{in(0, 5), in(1, 15), in(2, 10), in(3, 15), folded(4, 12)}, true))

	hands := map[int]handanalyzer.Strength{
		0: {9, 14},
		1: {1, 14, 13, 12, 11, 9},
		2: {2, 13, 10, 8, 7},
		3: {2, 13, 10, 8, 6},
	}

	payouts, err := pm.PayWinners(hands, []int{0, 1, 2, 3, 4})
	a.NoError(err)
	a.Equal(map[int]int{0: 25, 2: 20, 3: 12}, payouts)
}

func TestPotManager_PayWinners_oddChips(t *testing.T) {
	a := assert.New(t)
	pm := New()
	a.NoError(pm.Sweep([]Contribution{in(0, 7), in(1, 7), in(2, 7), folded(3, 2)}, false))

	tie := handanalyzer.Strength{7, 10, 11}
	hands := map[int]handanalyzer.Strength{0: tie, 1: tie, 2: tie}

	// 23 chips, three winners: two odd chips go to the first winners left of the button
	payouts, err := pm.PayWinners(hands, []int{2, 3, 0, 1})
	a.NoError(err)
	a.Equal(map[int]int{2: 8, 0: 8, 1: 7}, payouts)
}

func TestPotManager_PayWinners_soleContender(t *testing.T) {
	a := assert.New(t)
	pm := New()
	a.NoError(pm.Sweep([]Contribution{in(0, 10), folded(1, 5)}, false))

	payouts, err := pm.PayWinners(map[int]handanalyzer.Strength{0: nil}, []int{1, 0})
	a.NoError(err)
	a.Equal(map[int]int{0: 15}, payouts)
}

func TestPotManager_PayWinners_noEligible(t *testing.T) {
	pm := New()
	assert.NoError(t, pm.Sweep([]Contribution{in(0, 10)}, false))

	_, err := pm.PayWinners(map[int]handanalyzer.Strength{}, []int{0})
	assert.True(t, errors.Is(err, ErrNoEligibleWinner))
}

func TestPotManager_Clone(t *testing.T) {
	a := assert.New(t)
	pm := New()
	a.NoError(pm.Sweep([]Contribution{in(0, 10)}, false))

	clone := pm.Clone()
	a.NoError(pm.Sweep([]Contribution{in(0, 10)}, false))

	a.Equal(20, pm.Pots().Total())
	a.Equal(10, clone.Pots().Total())
}

func TestPot_MarshalJSON(t *testing.T) {
	b, err := Pot{Amount: 10}.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"amount":10,"eligible":[]}`, string(b))
	assert.True(t, Pot{Eligible: []int{3}}.IsEligible(3))
	assert.False(t, Pot{Eligible: []int{3}}.IsEligible(1))
}
