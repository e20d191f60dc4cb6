package texasholdem

import (
	"fmt"
	"zarena/internal/rng"
	"zarena/pkg/deck"
	"zarena/pkg/playable/poker/potmanager"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// fixed stakes
const (
	SmallBlindAmount = 5
	BigBlindAmount   = 10
	BetAmount        = 10
)

// table limits
const (
	MinPlayers = 2
	// MaxPlayers is bound by the deck (two hole cards each plus the board) and the observation grid
	MaxPlayers = 23

	holeCards      = 2
	communityCards = 5
)

// Options configures a table
type Options struct {
	// InfiniteCredits restores every player's credits at the start of each round
	InfiniteCredits bool
	// Rand is used for every card drawn. Defaults to a time-seeded generator
	Rand rng.Generator
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{}
}

// Table is a game of no-limit-style Texas hold'em with fixed blinds and raise tiers
type Table struct {
	logger  logrus.FieldLogger
	options Options
	rng     rng.Generator

	roundID      string
	deck         *deck.Deck
	community    deck.Hand
	participants []*Participant
	potManager   *potmanager.PotManager

	phase         Phase
	button        int
	currentPlayer int
	// turnInPhase counts the actions taken on the current street
	turnInPhase   int
	betToCall     int
	allInOccurred bool

	// nDealt is the number of players dealt into the round, nInHand excludes folds
	nDealt  int
	nInHand int

	smallBlindSeat   int
	bigBlindSeat     int
	smallBlindPosted bool
	bigBlindPosted   bool

	// finished is set when fewer than two players have credits
	finished   bool
	lastResult *RoundResult
}

// New returns a new table with one seat per stake and deals the first round
func New(logger logrus.FieldLogger, stakes []int, opts Options) (*Table, error) {
	if len(stakes) < MinPlayers {
		return nil, fmt.Errorf("expected at least %d players, got %d", MinPlayers, len(stakes))
	}

	if len(stakes) > MaxPlayers {
		return nil, fmt.Errorf("expected at most %d players, got %d", MaxPlayers, len(stakes))
	}

	participants := make([]*Participant, len(stakes))
	for i, stake := range stakes {
		if stake <= 0 {
			return nil, fmt.Errorf("player %d must start with a positive stake, got %d", i, stake)
		}

		participants[i] = newParticipant(i, stake)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	gen := opts.Rand
	if gen == nil {
		gen = rng.NewSeeded(0)
	}

	t := &Table{
		logger:       logger,
		options:      opts,
		rng:          gen,
		participants: participants,
	}

	if _, err := t.Reset(); err != nil {
		return nil, err
	}

	return t, nil
}

// Reset starts a new round
// The deck is rebuilt, bets and pots are cleared and two hole cards are dealt to every funded
// player. The button does not move. The small blind seat is the first to act.
// Called before the round settled, every player gets back what they bet in it.
func (t *Table) Reset() (Observation, error) {
	if t.phase != PhaseSettle {
		t.refundBets()
	}

	t.roundID = uuid.New().String()
	t.deck = deck.New(t.rng)
	t.community = make(deck.Hand, 0, communityCards)
	t.potManager = potmanager.New()
	t.phase = PhasePreflop
	t.turnInPhase = 0
	t.betToCall = 0
	t.allInOccurred = false
	t.smallBlindPosted = false
	t.bigBlindPosted = false

	t.nDealt = 0
	for _, p := range t.participants {
		p.reset(t.options.InfiniteCredits)
		if p.inHand {
			t.nDealt++
		}
	}

	t.nInHand = t.nDealt
	if t.nDealt < MinPlayers {
		t.finished = true
		t.phase = PhaseSettle
		t.logger.WithField("round", t.roundID).Info("table finished: fewer than two players have credits")
		return t.Observation(), nil
	}

	t.finished = false
	t.smallBlindSeat = t.nextSeatInHand(t.button)
	t.bigBlindSeat = t.nextSeatInHand(t.smallBlindSeat)

	for i := 0; i < holeCards; i++ {
		seat := t.button
		for j := 0; j < t.nDealt; j++ {
			seat = t.nextSeatInHand(seat)
			card, err := t.deck.Draw()
			if err != nil {
				return Observation{}, fmt.Errorf("could not deal hole cards: %w", err)
			}

			t.participants[seat].hole.AddCard(card)
		}
	}

	t.currentPlayer = t.smallBlindSeat

	t.logger.WithFields(logrus.Fields{
		"round":  t.roundID,
		"button": t.button,
	}).Debug("new round")

	return t.Observation(), nil
}

// refundBets returns the unsettled bets of the round to their owners
func (t *Table) refundBets() {
	for _, p := range t.participants {
		if p.totalBet > 0 {
			t.logger.WithFields(logrus.Fields{
				"round":  t.roundID,
				"player": p.ID,
			}).Debugf("refunded %d", p.totalBet)
		}

		p.credits += p.totalBet
		p.totalBet = 0
		p.bet = 0
	}
}

// nextSeatInHand returns the first seat after seat whose player is still in the hand
func (t *Table) nextSeatInHand(seat int) int {
	n := len(t.participants)
	for i := 1; i <= n; i++ {
		next := (seat + i) % n
		if t.participants[next].inHand {
			return next
		}
	}

	return seat
}

// nextActor returns the first seat after seat whose player can still act
func (t *Table) nextActor(seat int) (int, bool) {
	n := len(t.participants)
	for i := 1; i <= n; i++ {
		next := (seat + i) % n
		if t.participants[next].canAct() {
			return next, true
		}
	}

	return seat, false
}

// seatOrder returns every seat starting left of the button
func (t *Table) seatOrder() []int {
	n := len(t.participants)
	order := make([]int, n)
	for i := range order {
		order[i] = (t.button + 1 + i) % n
	}

	return order
}

// ToPlay returns the seat of the player expected to act
func (t *Table) ToPlay() int {
	return t.currentPlayer
}

// CurrentParticipant returns the player expected to act
func (t *Table) CurrentParticipant() *Participant {
	return t.participants[t.currentPlayer]
}

// Participants returns every seat in order
func (t *Table) Participants() []*Participant {
	return t.participants
}

// TotalPlayers returns the number of seats
func (t *Table) TotalPlayers() int {
	return len(t.participants)
}

// PlayersInHand returns the number of players who have not folded this round
func (t *Table) PlayersInHand() int {
	return t.nInHand
}

// Button returns the dealer seat
func (t *Table) Button() int {
	return t.button
}

// Phase returns the current street
func (t *Table) Phase() Phase {
	return t.phase
}

// BetToCall returns the highest bet on the current street
func (t *Table) BetToCall() int {
	return t.betToCall
}

// Community returns the community cards dealt so far
func (t *Table) Community() deck.Hand {
	return t.community.Clone()
}

// Pots returns the pots swept so far this round
func (t *Table) Pots() potmanager.Pots {
	return t.potManager.Pots()
}

// RoundID returns the identifier of the current round
func (t *Table) RoundID() string {
	return t.roundID
}

// IsFinished returns true if fewer than two players have credits left
func (t *Table) IsFinished() bool {
	return t.finished
}

// LastResult returns the result of the previously settled round, or nil
func (t *Table) LastResult() *RoundResult {
	return t.lastResult
}

// clone returns a deep copy of the table used to restore it if a step fails
// The random source is shared, so draws made by a failed step are not replayed.
func (t *Table) clone() *Table {
	cp := *t
	cp.deck = t.deck.Clone()
	cp.community = t.community.Clone()
	cp.potManager = t.potManager.Clone()
	cp.participants = make([]*Participant, len(t.participants))
	for i, p := range t.participants {
		cp.participants[i] = p.clone()
	}

	return &cp
}

func (t *Table) restore(backup *Table) {
	*t = *backup
}
