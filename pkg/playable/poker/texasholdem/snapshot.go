package texasholdem

import (
	"zarena/pkg/playable/poker"
	"zarena/pkg/playable/poker/action"
)

// Snapshot is a serializable copy of the table state
type Snapshot struct {
	RoundID        string             `json:"roundId"`
	Phase          Phase              `json:"phase"`
	Button         int                `json:"button"`
	CurrentPlayer  int                `json:"currentPlayer"`
	TotalPlayers   int                `json:"totalPlayers"`
	PlayersInHand  int                `json:"playersInHand"`
	TurnInPhase    int                `json:"turnInPhase"`
	AllInOccurred  bool               `json:"allInOccurred"`
	Finished       bool               `json:"finished"`
	CommunityCodes []int              `json:"communityCodes"`
	Participants   []*participantJSON `json:"participants"`
	LegalActions   []action.Action    `json:"legalActions"`
	PokerState     *poker.State       `json:"pokerState"`
}

// GetState returns a snapshot of the table
func (t *Table) GetState() *Snapshot {
	participants := make([]*participantJSON, len(t.participants))
	for i, p := range t.participants {
		participants[i] = p.participantJSON()
	}

	return &Snapshot{
		RoundID:        t.roundID,
		Phase:          t.phase,
		Button:         t.button,
		CurrentPlayer:  t.currentPlayer,
		TotalPlayers:   len(t.participants),
		PlayersInHand:  t.nInHand,
		TurnInPhase:    t.turnInPhase,
		AllInOccurred:  t.allInOccurred,
		Finished:       t.finished,
		CommunityCodes: t.community.Codes(),
		Participants:   participants,
		LegalActions:   t.LegalActions(),
		PokerState: &poker.State{
			SmallBlind: SmallBlindAmount,
			BigBlind:   BigBlindAmount,
			CurrentBet: t.betToCall,
			Pots:       t.potManager.Pots(),
			Community:  t.community.Clone(),
		},
	}
}
