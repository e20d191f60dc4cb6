package action

import (
	"encoding/json"
	"fmt"
)

// Action represents an action a player can take
// The numeric value is the code exchanged with drivers
type Action int

// action constants
const (
	SmallBlind Action = iota
	BigBlind
	Fold
	Check
	Bet
	Call
	Raise25
	Raise50
	Raise100
	Raise500
	Raise1000
	AllIn
)

// RaiseTiers lists the raise actions from the smallest to the largest amount
var RaiseTiers = []Action{Raise25, Raise50, Raise100, Raise500, Raise1000}

var raiseAmounts = map[Action]int{
	Raise25:   25,
	Raise50:   50,
	Raise100:  100,
	Raise500:  500,
	Raise1000: 1000,
}

// FromInt returns an action for the given code
func FromInt(code int) (Action, error) {
	a := Action(code)
	if !a.IsValid() {
		return 0, fmt.Errorf("no action with id %d", code)
	}

	return a, nil
}

// IsValid returns true if the action code exists
func (a Action) IsValid() bool {
	return a >= SmallBlind && a <= AllIn
}

// RaiseTo returns the bet a raise action brings the player to
func (a Action) RaiseTo() (int, bool) {
	amount, ok := raiseAmounts[a]
	return amount, ok
}

// IsForced returns true for blinds, which are posted without a decision
func (a Action) IsForced() bool {
	return a == SmallBlind || a == BigBlind
}

func (a Action) String() string {
	switch a {
	case SmallBlind:
		return "Small blind"
	case BigBlind:
		return "Big blind"
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Bet:
		return "Bet"
	case Call:
		return "Call"
	case Raise25, Raise50, Raise100, Raise500, Raise1000:
		amount, _ := a.RaiseTo()
		return fmt.Sprintf("Raise to %d", amount)
	case AllIn:
		return "All-in"
	}

	return fmt.Sprintf("Unknown action (%d)", int(a))
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(a),
		Name: a.String(),
	})
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case SmallBlind:
		return fmt.Sprintf("posted the small blind of %d", amount)
	case BigBlind:
		return fmt.Sprintf("posted the big blind of %d", amount)
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called %d", amount)
	case Bet:
		return fmt.Sprintf("bet %d", amount)
	case Raise25, Raise50, Raise100, Raise500, Raise1000:
		return fmt.Sprintf("raised to %d", amount)
	case AllIn:
		return fmt.Sprintf("went all-in for %d", amount)
	}

	return ""
}

// Codes converts actions to their integer codes
func Codes(actions []Action) []int {
	codes := make([]int, len(actions))
	for i, a := range actions {
		codes[i] = int(a)
	}

	return codes
}
