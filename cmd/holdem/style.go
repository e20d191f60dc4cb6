package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"zarena/pkg/playable/poker/texasholdem"

	"github.com/pterm/pterm"
)

func seatName(names []string, seat int) string {
	return fmt.Sprintf("%d %s", seat, names[seat])
}

func renderTable(table *texasholdem.Table, names []string) error {
	state := table.GetState()

	unswept := 0
	for _, p := range table.Participants() {
		unswept += p.Bet()
	}

	pterm.DefaultSection.Printfln("Round %s - %s", state.RoundID[:8], state.Phase)

	header := fmt.Sprintf("Pot: %d   Bet to call: %d   Community: %s",
		state.PokerState.PotTotal(unswept), state.PokerState.CurrentBet, state.PokerState.Community)
	pterm.DefaultBox.WithTitle("Table").Println(header)

	data := pterm.TableData{{"Seat", "Cards", "Credits", "Bet", "Total", "Status"}}
	for _, p := range table.Participants() {
		cards := "-"
		if p.ID == table.ToPlay() {
			cards = p.Hole().String()
		}

		status := ""
		switch {
		case !p.InHand():
			status = "out"
		case p.IsAllIn():
			status = "all-in"
		case p.ID == table.ToPlay():
			status = pterm.LightCyan("to act")
		}

		if p.ID == table.Button() {
			status += " (D)"
		}

		data = append(data, []string{
			seatName(names, p.ID),
			cards,
			strconv.Itoa(p.Credits()),
			strconv.Itoa(p.Bet()),
			strconv.Itoa(p.TotalBet()),
			status,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return fmt.Errorf("could not render table: %w", err)
	}

	return nil
}

func renderResult(result *texasholdem.RoundResult, names []string) {
	text := fmt.Sprintf("Community: %s\n", result.Community)
	for i, pot := range result.Pots {
		eligible := make([]string, 0, len(pot.Eligible))
		for seat := range names {
			if pot.IsEligible(seat) {
				eligible = append(eligible, strconv.Itoa(seat))
			}
		}

		text += fmt.Sprintf("Pot %d: %d (seats %s)\n", i, pot.Amount, strings.Join(eligible, ","))
	}

	seats := make([]int, 0, len(result.Hands))
	for seat := range result.Hands {
		seats = append(seats, seat)
	}

	sort.Ints(seats)
	for _, seat := range seats {
		hand := result.Hands[seat]
		text += fmt.Sprintf("%s: %s (%s)\n", seatName(names, seat), hand.Cards, hand.Description)
	}

	for seat, reward := range result.Rewards {
		if reward > 0 {
			text += pterm.LightGreen(fmt.Sprintf("%s won %d\n", seatName(names, seat), reward))
		} else if reward < 0 {
			text += pterm.LightRed(fmt.Sprintf("%s lost %d\n", seatName(names, seat), -reward))
		}
	}

	pterm.DefaultBox.WithTitle("Showdown").Println(text)
}
