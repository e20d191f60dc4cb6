package texasholdem

import (
	"zarena/pkg/playable/poker/action"

	"github.com/sirupsen/logrus"
)

// LegalActions returns the actions the current player may take
func (t *Table) LegalActions() []action.Action {
	if t.finished || t.phase == PhaseSettle {
		return []action.Action{}
	}

	p := t.participants[t.currentPlayer]
	if !p.canAct() {
		return []action.Action{}
	}

	if forced, ok := t.forcedAction(); ok {
		return []action.Action{forced}
	}

	actions := make([]action.Action, 0, 4+len(action.RaiseTiers))
	if t.betToCall == 0 {
		actions = append(actions, action.Check)
		if p.credits > BetAmount {
			actions = append(actions, action.Bet)
		} else {
			actions = append(actions, action.AllIn)
		}

		return actions
	}

	if p.bet == t.betToCall {
		actions = append(actions, action.Check)
		return append(actions, t.raiseTiers(p)...)
	}

	actions = append(actions, action.Fold)
	if p.credits > t.betToCall-p.bet {
		actions = append(actions, action.Call)
	}

	actions = append(actions, t.raiseTiers(p)...)
	return append(actions, action.AllIn)
}

// raiseTiers returns the raise actions the player can afford without going all-in
func (t *Table) raiseTiers(p *Participant) []action.Action {
	if t.allInOccurred {
		return nil
	}

	actions := make([]action.Action, 0, len(action.RaiseTiers))
	for _, a := range action.RaiseTiers {
		to, _ := a.RaiseTo()
		if to > t.betToCall && to-p.bet < p.credits {
			actions = append(actions, a)
		}
	}

	return actions
}

// forcedAction returns the blind the current player must post, if any
func (t *Table) forcedAction() (action.Action, bool) {
	if t.phase != PhasePreflop {
		return 0, false
	}

	switch {
	case !t.smallBlindPosted && t.currentPlayer == t.smallBlindSeat:
		return action.SmallBlind, true
	case t.smallBlindPosted && !t.bigBlindPosted && t.currentPlayer == t.bigBlindSeat:
		return action.BigBlind, true
	}

	return 0, false
}

// IsLegal returns true if the action is in LegalActions()
func (t *Table) IsLegal(a action.Action) bool {
	for _, legal := range t.LegalActions() {
		if legal == a {
			return true
		}
	}

	return false
}

// amountFor returns the credits the current player commits with the action
func (t *Table) amountFor(p *Participant, a action.Action) int {
	switch a {
	case action.SmallBlind:
		return minInt(SmallBlindAmount, p.credits)
	case action.BigBlind:
		return minInt(BigBlindAmount, p.credits)
	case action.Bet:
		return BetAmount
	case action.Call:
		return t.betToCall - p.bet
	case action.AllIn:
		return p.credits
	}

	if to, ok := a.RaiseTo(); ok {
		return to - p.bet
	}

	return 0
}

// apply performs a legal action for the current player
func (t *Table) apply(a action.Action) error {
	p := t.participants[t.currentPlayer]

	amount := 0
	switch a {
	case action.Fold:
		p.inHand = false
		t.nInHand--
	case action.Check:
	default:
		amount = t.amountFor(p, a)
		if err := p.placeBet(amount); err != nil {
			return err
		}

		if p.bet > t.betToCall {
			t.betToCall = p.bet
		}

		if p.allIn {
			t.allInOccurred = true
		}
	}

	switch a {
	case action.SmallBlind:
		t.smallBlindPosted = true
	case action.BigBlind:
		t.bigBlindPosted = true
	}

	logAmount := amount
	if _, ok := a.RaiseTo(); ok {
		logAmount = p.bet
	}

	t.logger.WithFields(logrus.Fields{
		"round":  t.roundID,
		"player": p.ID,
		"phase":  t.phase.String(),
		"action": a.String(),
	}).Debug(a.LogMessage(logAmount))

	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
