package texasholdem

import "encoding/json"

// Phase is the betting street of a round
type Phase int

// constants for Phase
const (
	PhasePreflop Phase = iota
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseSettle
)

// communityCards is how many community cards are dealt when the phase starts
func (p Phase) communityCards() int {
	switch p {
	case PhaseFlop:
		return 3
	case PhaseTurn, PhaseRiver:
		return 1
	}

	return 0
}

func (p Phase) String() string {
	switch p {
	case PhasePreflop:
		return "preflop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseSettle:
		return "settle"
	}

	return ""
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}
