package potmanager

import (
	"sort"
	"zarena/pkg/playable/poker/handanalyzer"
)

type tier struct {
	strength     handanalyzer.Strength
	participants []int
}

// WinManager groups participants into tiers of equal hand strength
type WinManager struct {
	tiers []*tier
}

// NewWinManager returns an empty WinManager
func NewWinManager() *WinManager {
	return &WinManager{}
}

// AddParticipant records the hand strength of a participant
func (w *WinManager) AddParticipant(id int, handStrength handanalyzer.Strength) {
	for _, t := range w.tiers {
		if t.strength.Equal(handStrength) {
			t.participants = append(t.participants, id)
			return
		}
	}

	w.tiers = append(w.tiers, &tier{
		strength:     handStrength,
		participants: []int{id},
	})
}

// GetSortedTiers returns the participants grouped by strength, strongest first
func (w *WinManager) GetSortedTiers() [][]int {
	tiers := make([]*tier, len(w.tiers))
	copy(tiers, w.tiers)

	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].strength.Beats(tiers[j].strength)
	})

	tieredParticipants := make([][]int, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}
