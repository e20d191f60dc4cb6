package potmanager

import "encoding/json"

// Pot is an amount that can be won by the eligible participants
type Pot struct {
	Amount int
	// Eligible are the participant IDs that were still in the hand and contributed the full tier
	Eligible []int
}

type potJSON struct {
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	eligible := p.Eligible
	if eligible == nil {
		eligible = []int{}
	}

	return json.Marshal(potJSON{
		Amount:   p.Amount,
		Eligible: eligible,
	})
}

// IsEligible returns true if the participant can win the pot
func (p Pot) IsEligible(id int) bool {
	for _, e := range p.Eligible {
		if e == id {
			return true
		}
	}

	return false
}

// Pots is an ordered collection of pots. The first pot is the main pot
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}
