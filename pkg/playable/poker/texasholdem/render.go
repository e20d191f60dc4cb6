package texasholdem

import (
	"fmt"
	"strings"
	"zarena/pkg/deck"
)

// String renders the table as text
func (t *Table) String() string {
	var b strings.Builder

	unswept := 0
	for _, p := range t.participants {
		unswept += p.bet
	}

	pots := t.potManager.Pots()
	fmt.Fprintf(&b, "Phase: %s\n", t.phase)
	fmt.Fprintf(&b, "Pot: %d", pots.Total()+unswept)
	if len(pots) > 1 {
		for i, pot := range pots[1:] {
			fmt.Fprintf(&b, " (side pot %d: %d)", i+1, pot.Amount)
		}
	}

	fmt.Fprintf(&b, "\nBet to call: %d\n", t.betToCall)
	fmt.Fprintf(&b, "Community: %s\n", renderCards(t.community))

	for i, p := range t.participants {
		if !p.inHand {
			continue
		}

		marker := "  "
		if i == t.currentPlayer {
			marker = "> "
		}

		button := ""
		if i == t.button {
			button = " (D)"
		}

		allIn := ""
		if p.allIn {
			allIn = " all-in"
		}

		fmt.Fprintf(&b, "%sPlayer %d%s: %s credits=%d bet=%d total=%d%s\n",
			marker, p.ID, button, renderCards(p.hole), p.credits, p.bet, p.totalBet, allIn)
	}

	return b.String()
}

func renderCards(cards deck.Hand) string {
	if len(cards) == 0 {
		return "-"
	}

	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.String()
	}

	return strings.Join(s, " ")
}
