package texasholdem

import (
	"fmt"
	"zarena/pkg/playable/poker/action"
)

// Step performs the action for the current player and advances the game
// An action that is not in LegalActions() is rejected with an ErrInvalidAction error and the
// table is left untouched. Blinds owed by the following players are posted within the same call.
// When a round settles, rewards holds each player's net credit change for the round and the
// next round is dealt automatically. done is true once the button has gone around the table.
func (t *Table) Step(a action.Action, advanceTurn bool) (Observation, []int, bool, error) {
	if t.finished {
		return t.Observation(), nil, false, ErrTableFinished
	}

	if !t.IsLegal(a) {
		return t.Observation(), nil, false, newParticipantError("%s is not a legal action for player %d", a, t.currentPlayer)
	}

	backup := t.clone()
	rewards, done, err := t.step(a, advanceTurn)
	if err != nil {
		t.restore(backup)
		return t.Observation(), nil, false, err
	}

	if rewards == nil {
		rewards = make([]int, len(t.participants))
	}

	return t.Observation(), rewards, done, nil
}

func (t *Table) step(a action.Action, advanceTurn bool) ([]int, bool, error) {
	for {
		if err := t.apply(a); err != nil {
			return nil, false, err
		}

		t.turnInPhase++

		settled, rewards, done, err := t.afterAction(advanceTurn)
		if err != nil || settled {
			return rewards, done, err
		}

		if !advanceTurn {
			return nil, false, nil
		}

		forced, ok := t.forcedAction()
		if !ok || !t.participants[t.currentPlayer].canAct() {
			return nil, false, nil
		}

		a = forced
	}
}

// afterAction ends the hand, the street or the turn, in that order of precedence
func (t *Table) afterAction(advanceTurn bool) (bool, []int, bool, error) {
	if t.nInHand == 1 {
		rewards, done, err := t.settle()
		return true, rewards, done, err
	}

	if t.isTurnCompleted() {
		return t.advancePhase()
	}

	// the seat only keeps the turn while it can still act
	if !advanceTurn && t.participants[t.currentPlayer].canAct() {
		return false, nil, false, nil
	}

	next, ok := t.nextActor(t.currentPlayer)
	if !ok {
		// everybody left is all-in
		return t.advancePhase()
	}

	t.currentPlayer = next
	return false, nil, false, nil
}

// isTurnCompleted returns true when the street's betting is closed
// Every player must have matched the bet, be all-in or have folded. Before the flop the blinds
// count as actions, so the big blind keeps the option to act.
func (t *Table) isTurnCompleted() bool {
	for _, p := range t.participants {
		if p.inHand && !p.allIn && p.bet != t.betToCall {
			return false
		}
	}

	threshold := t.nInHand
	if t.phase == PhasePreflop && !t.allInOccurred {
		threshold = t.nDealt + 2
	}

	return t.turnInPhase >= threshold
}

// advancePhase sweeps the street and deals the next one
// After an all-in the remaining community cards are dealt out and the round settles.
func (t *Table) advancePhase() (bool, []int, bool, error) {
	if err := t.collectBets(); err != nil {
		return false, nil, false, err
	}

	if t.allInOccurred || t.phase == PhaseRiver {
		rewards, done, err := t.settle()
		return true, rewards, done, err
	}

	t.phase++
	if err := t.dealCommunity(t.phase.communityCards()); err != nil {
		return false, nil, false, err
	}

	t.turnInPhase = 0
	next, ok := t.nextActor(t.button)
	if !ok {
		rewards, done, err := t.settle()
		return true, rewards, done, err
	}

	t.currentPlayer = next
	return false, nil, false, nil
}

func (t *Table) dealCommunity(n int) error {
	if !t.deck.CanDraw(n) {
		return newInvalidStateError("cannot deal %d community cards from %d left", n, t.deck.CardsLeft())
	}

	for i := 0; i < n; i++ {
		card, err := t.deck.Draw()
		if err != nil {
			return fmt.Errorf("could not deal community card: %w", err)
		}

		t.community = append(t.community, card)
	}

	return nil
}
