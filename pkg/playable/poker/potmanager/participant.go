package potmanager

// Contribution is what a participant put in during a single betting round
type Contribution struct {
	ID     int
	Amount int
	// InHand is false once the participant folded
	InHand bool
}
