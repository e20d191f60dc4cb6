package texasholdem

import (
	"fmt"
	"zarena/pkg/deck"
	"zarena/pkg/playable/poker/handanalyzer"
	"zarena/pkg/playable/poker/potmanager"

	"github.com/sirupsen/logrus"
)

// RoundResult is the outcome of a settled round
type RoundResult struct {
	RoundID   string          `json:"roundId"`
	Community deck.Hand       `json:"community"`
	Pots      potmanager.Pots `json:"pots"`
	// Rewards is the net credit change of every seat
	Rewards []int `json:"rewards"`
	// Payouts is what each seat collected from the pots
	Payouts []int `json:"payouts"`
	// Hands holds the best hand of every player that reached a showdown
	Hands map[int]*ShowdownHand `json:"hands"`
}

// ShowdownHand is a player's best five cards at showdown
type ShowdownHand struct {
	Cards       deck.Hand             `json:"cards"`
	Strength    handanalyzer.Strength `json:"strength"`
	Description string                `json:"description"`
}

// collectBets sweeps the street's bets into the pots
func (t *Table) collectBets() error {
	bets := make([]potmanager.Contribution, len(t.participants))
	for i, p := range t.participants {
		bets[i] = potmanager.Contribution{
			ID:     p.ID,
			Amount: p.bet,
			InHand: p.inHand,
		}
	}

	if err := t.potManager.Sweep(bets, t.allInOccurred); err != nil {
		return newInvalidStateError("could not sweep bets: %s", err)
	}

	for _, p := range t.participants {
		p.bet = 0
	}

	t.betToCall = 0
	return nil
}

// settle ends the round: the pots are paid, the button moves and the next round is dealt
func (t *Table) settle() ([]int, bool, error) {
	if err := t.collectBets(); err != nil {
		return nil, false, err
	}

	t.phase = PhaseSettle

	totalBet := 0
	for _, p := range t.participants {
		totalBet += p.totalBet
	}

	pots := t.potManager.Pots()
	if pots.Total() != totalBet {
		return nil, false, newInvalidStateError("pots hold %d but %d was bet", pots.Total(), totalBet)
	}

	if swept := t.potManager.Swept(); swept != totalBet {
		return nil, false, newInvalidStateError("swept %d but %d was bet", swept, totalBet)
	}

	result := &RoundResult{
		RoundID: t.roundID,
		Pots:    pots,
		Rewards: make([]int, len(t.participants)),
		Payouts: make([]int, len(t.participants)),
		Hands:   make(map[int]*ShowdownHand),
	}

	hands, err := t.showdown(result)
	if err != nil {
		return nil, false, err
	}

	payouts, err := t.potManager.PayWinners(hands, t.seatOrder())
	if err != nil {
		return nil, false, newInvalidStateError("could not pay winners: %s", err)
	}

	for i, p := range t.participants {
		p.credits += payouts[p.ID]
		result.Payouts[i] = payouts[p.ID]
		result.Rewards[i] = p.credits - p.roundCredits
	}

	result.Community = t.community.Clone()
	t.lastResult = result
	t.logResult(result)

	t.button = (t.button + 1) % len(t.participants)
	done := t.button == 0

	if _, err := t.Reset(); err != nil {
		return nil, false, err
	}

	return result.Rewards, done, nil
}

// showdown returns the strength of every player still in the hand
// A lone player wins without showing, so their strength is left nil.
func (t *Table) showdown(result *RoundResult) (map[int]handanalyzer.Strength, error) {
	hands := make(map[int]handanalyzer.Strength, t.nInHand)
	if t.nInHand == 1 {
		for _, p := range t.participants {
			if p.inHand {
				hands[p.ID] = nil
			}
		}

		return hands, nil
	}

	if err := t.dealCommunity(communityCards - len(t.community)); err != nil {
		return nil, err
	}

	for _, p := range t.participants {
		if !p.inHand {
			continue
		}

		cards := make([]deck.Card, 0, holeCards+communityCards)
		cards = append(cards, p.hole...)
		cards = append(cards, t.community...)

		best, strength, err := handanalyzer.BestHand(cards)
		if err != nil {
			return nil, fmt.Errorf("could not rank player %d: %w", p.ID, err)
		}

		p.bestHand = best
		p.handValue = strength
		hands[p.ID] = strength

		description, err := handanalyzer.Describe(best)
		if err != nil {
			description = strength.String()
		}

		result.Hands[p.ID] = &ShowdownHand{
			Cards:       best,
			Strength:    strength,
			Description: description,
		}
	}

	return hands, nil
}

func (t *Table) logResult(result *RoundResult) {
	for i, p := range t.participants {
		if result.Rewards[i] == 0 && !p.inHand {
			continue
		}

		fields := logrus.Fields{
			"round":  result.RoundID,
			"player": p.ID,
			"reward": result.Rewards[i],
		}

		if hand, ok := result.Hands[p.ID]; ok {
			fields["hand"] = hand.Description
		}

		t.logger.WithFields(fields).Info("round settled")
	}
}
