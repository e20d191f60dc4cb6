package potmanager

import (
	"errors"
	"fmt"
	"sort"
	"zarena/pkg/playable/poker/handanalyzer"
)

// ErrNoEligibleWinner is returned when a pot has nobody left to award it to
var ErrNoEligibleWinner = errors.New("pot has no eligible winner")

// PotManager keeps track of the main pot and any side pots for a round
type PotManager struct {
	pots []*Pot
	// swept is the total of every contribution collected
	swept int
}

// New instantiates a new PotManager with an empty main pot
func New() *PotManager {
	return &PotManager{
		pots: []*Pot{{}},
	}
}

// Sweep collects the bets of a betting round into the pots
// If nobody is all-in, everything goes into the main pot. Otherwise the bets are split into
// tiers at each distinct bet level of the participants still in the hand. The lowest tier is
// merged into the main pot and every higher tier becomes a side pot.
func (p *PotManager) Sweep(bets []Contribution, allIn bool) error {
	total := 0
	for _, c := range bets {
		if c.Amount < 0 {
			return fmt.Errorf("participant %d has a negative bet of %d", c.ID, c.Amount)
		}

		total += c.Amount
	}

	if total == 0 {
		return nil
	}

	p.swept += total
	mainPot := p.pots[0]

	levels := betLevels(bets)
	if !allIn || len(levels) == 0 {
		mainPot.Amount += total
		mainPot.Eligible = inHand(bets, 0)
		return nil
	}

	collected := 0
	prevLevel := 0
	for i, level := range levels {
		isTopLevel := i+1 == len(levels)

		potAmount := 0
		for _, c := range bets {
			amount := c.Amount
			if amount > level && !isTopLevel {
				amount = level
			}

			if diff := amount - prevLevel; diff > 0 {
				potAmount += diff
			}
		}

		eligible := inHand(bets, level)
		if i == 0 {
			mainPot.Amount += potAmount
			mainPot.Eligible = eligible
		} else {
			p.pots = append(p.pots, &Pot{
				Amount:   potAmount,
				Eligible: eligible,
			})
		}

		collected += potAmount
		prevLevel = level
	}

	if collected != total {
		return fmt.Errorf("swept %d into pots but %d was bet", collected, total)
	}

	return nil
}

// betLevels returns the distinct, non-zero bet amounts of participants still in the hand, ascending
func betLevels(bets []Contribution) []int {
	seen := make(map[int]bool)
	levels := make([]int, 0, len(bets))
	for _, c := range bets {
		if c.InHand && c.Amount > 0 && !seen[c.Amount] {
			seen[c.Amount] = true
			levels = append(levels, c.Amount)
		}
	}

	sort.Ints(levels)
	return levels
}

// inHand returns the IDs of participants still in the hand who bet at least minAmount
func inHand(bets []Contribution, minAmount int) []int {
	ids := make([]int, 0, len(bets))
	for _, c := range bets {
		if c.InHand && c.Amount >= minAmount {
			ids = append(ids, c.ID)
		}
	}

	return ids
}

// Pots returns a copy of the pots
func (p *PotManager) Pots() Pots {
	pots := make(Pots, len(p.pots))
	for i, pot := range p.pots {
		eligible := make([]int, len(pot.Eligible))
		copy(eligible, pot.Eligible)

		pots[i] = &Pot{
			Amount:   pot.Amount,
			Eligible: eligible,
		}
	}

	return pots
}

// Swept returns the total of every contribution collected so far
func (p *PotManager) Swept() int {
	return p.swept
}

// Clone returns a deep copy of the pot manager
func (p *PotManager) Clone() *PotManager {
	return &PotManager{
		pots:  p.Pots(),
		swept: p.swept,
	}
}

// PayWinners awards every pot and returns the amount won by each participant
// hands holds the strength of each participant still in the hand. A pot with a single eligible
// participant is awarded without looking at strengths. Ties split a pot evenly and the odd chips
// go one at a time to the tied winners in the order given by seatOrder (left of the button first).
func (p *PotManager) PayWinners(hands map[int]handanalyzer.Strength, seatOrder []int) (map[int]int, error) {
	position := make(map[int]int, len(seatOrder))
	for i, id := range seatOrder {
		position[id] = i
	}

	payouts := make(map[int]int)
	for i, pot := range p.pots {
		if pot.Amount == 0 {
			continue
		}

		winners, err := potWinners(pot, hands)
		if err != nil {
			return nil, fmt.Errorf("pot %d: %w", i, err)
		}

		sort.SliceStable(winners, func(a, b int) bool {
			return position[winners[a]] < position[winners[b]]
		})

		share := pot.Amount / len(winners)
		oddChips := pot.Amount % len(winners)
		for j, id := range winners {
			won := share
			if j < oddChips {
				won++
			}

			payouts[id] += won
		}
	}

	return payouts, nil
}

func potWinners(pot *Pot, hands map[int]handanalyzer.Strength) ([]int, error) {
	contenders := make([]int, 0, len(pot.Eligible))
	for _, id := range pot.Eligible {
		if _, ok := hands[id]; ok {
			contenders = append(contenders, id)
		}
	}

	switch len(contenders) {
	case 0:
		return nil, ErrNoEligibleWinner
	case 1:
		return contenders, nil
	}

	wm := NewWinManager()
	for _, id := range contenders {
		wm.AddParticipant(id, hands[id])
	}

	return wm.GetSortedTiers()[0], nil
}
