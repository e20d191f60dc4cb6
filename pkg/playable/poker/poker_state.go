package poker

import (
	"zarena/pkg/deck"
	"zarena/pkg/playable/poker/potmanager"
)

// State provides the current state data for common poker values
type State struct {
	SmallBlind int             `json:"smallBlind"`
	BigBlind   int             `json:"bigBlind"`
	CurrentBet int             `json:"currentBet"`
	Pots       potmanager.Pots `json:"pots"`
	Community  deck.Hand       `json:"community"`
}

// PotTotal returns the chips in every pot plus the bets not yet swept
func (s *State) PotTotal(unswept int) int {
	return s.Pots.Total() + unswept
}
