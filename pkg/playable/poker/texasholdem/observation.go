package texasholdem

// Observation is the numeric view of the table given to the player to act
//
//	[0][0][i] code of the i-th community card, 0 if not dealt
//	[0][1][i] code of the acting player's i-th hole card
//	[1][s/5][s%5] credits of seat s
//
// Card codes are deck.Card.Code().
type Observation [2][5][5]int

// Observation returns the observation for the current player
func (t *Table) Observation() Observation {
	var obs Observation
	for i, card := range t.community {
		obs[0][0][i] = card.Code()
	}

	if t.currentPlayer < len(t.participants) {
		for i, card := range t.participants[t.currentPlayer].hole {
			obs[0][1][i] = card.Code()
		}
	}

	for i, p := range t.participants {
		obs[1][i/5][i%5] = p.credits
	}

	return obs
}

// Slice flattens the observation into community, hole and credits
func (o Observation) Slice() (community []int, hole []int, credits []int) {
	community = append(community, o[0][0][:]...)
	hole = append(hole, o[0][1][:holeCards]...)
	for _, row := range o[1] {
		credits = append(credits, row[:]...)
	}

	return
}
