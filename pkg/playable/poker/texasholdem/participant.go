package texasholdem

import (
	"zarena/pkg/deck"
	"zarena/pkg/playable/poker/handanalyzer"
)

// Participant represents an individual seat at the table
type Participant struct {
	ID int

	credits        int
	initialCredits int
	// roundCredits is what the participant had when the round started
	roundCredits int
	hole         deck.Hand

	// bestHand and handValue are only set during a showdown
	bestHand  deck.Hand
	handValue handanalyzer.Strength

	// bet is what was put in on the current street, totalBet is for the whole round
	bet      int
	totalBet int

	inHand bool
	allIn  bool
}

type participantJSON struct {
	ID             int       `json:"id"`
	Credits        int       `json:"credits"`
	InitialCredits int       `json:"initialCredits"`
	Hole           deck.Hand `json:"hole"`
	HoleCodes      []int     `json:"holeCodes"`
	HandValue      []int     `json:"handValue"`
	Bet            int       `json:"bet"`
	TotalBet       int       `json:"totalBet"`
	InHand         bool      `json:"inHand"`
	AllIn          bool      `json:"allIn"`
}

func newParticipant(id, credits int) *Participant {
	return &Participant{
		ID:             id,
		credits:        credits,
		initialCredits: credits,
		roundCredits:   credits,
		hole:           make(deck.Hand, 0, 2),
		inHand:         true,
	}
}

// reset prepares the participant for a new round
// Credits are only restored when the table runs with infinite credits.
// A participant without credits sits the round out.
func (p *Participant) reset(infiniteCredits bool) {
	if infiniteCredits {
		p.credits = p.initialCredits
	}

	p.roundCredits = p.credits
	p.hole = make(deck.Hand, 0, 2)
	p.bestHand = nil
	p.handValue = nil
	p.bet = 0
	p.totalBet = 0
	p.inHand = p.credits > 0
	p.allIn = false
}

// placeBet moves credits from the participant into their bet
func (p *Participant) placeBet(amount int) error {
	if amount < 0 {
		return newParticipantError("cannot bet a negative amount")
	}

	if amount > p.credits {
		return newParticipantError("bet of %d exceeds your %d credits", amount, p.credits)
	}

	p.credits -= amount
	p.bet += amount
	p.totalBet += amount
	if p.credits == 0 {
		p.allIn = true
	}

	return nil
}

// canAct returns true if the participant can still make decisions this round
func (p *Participant) canAct() bool {
	return p.inHand && !p.allIn
}

// Credits returns the credits not yet committed to a bet
func (p *Participant) Credits() int {
	return p.credits
}

// InitialCredits returns the credits the participant was seated with
func (p *Participant) InitialCredits() int {
	return p.initialCredits
}

// Bet returns the amount bet on the current street
func (p *Participant) Bet() int {
	return p.bet
}

// TotalBet returns the amount bet during the whole round
func (p *Participant) TotalBet() int {
	return p.totalBet
}

// InHand returns false once the participant folded or if they sat the round out
func (p *Participant) InHand() bool {
	return p.inHand
}

// IsAllIn returns true if every credit has been committed
func (p *Participant) IsAllIn() bool {
	return p.allIn
}

// Hole returns the participant's hole cards
func (p *Participant) Hole() deck.Hand {
	return p.hole.Clone()
}

// HandValue returns the strength of the participant's best hand (only valid during showdown)
func (p *Participant) HandValue() handanalyzer.Strength {
	return p.handValue
}

func (p *Participant) clone() *Participant {
	cp := *p
	cp.hole = p.hole.Clone()
	if p.bestHand != nil {
		cp.bestHand = p.bestHand.Clone()
	}

	if p.handValue != nil {
		cp.handValue = append(handanalyzer.Strength{}, p.handValue...)
	}

	return &cp
}

func (p *Participant) participantJSON() *participantJSON {
	handValue := []int(p.handValue)
	if handValue == nil {
		handValue = []int{}
	}

	return &participantJSON{
		ID:             p.ID,
		Credits:        p.credits,
		InitialCredits: p.initialCredits,
		Hole:           p.hole.Clone(),
		HoleCodes:      p.hole.Codes(),
		HandValue:      handValue,
		Bet:            p.bet,
		TotalBet:       p.totalBet,
		InHand:         p.inHand,
		AllIn:          p.allIn,
	}
}
