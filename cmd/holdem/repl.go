package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"zarena/internal/rng"
	"zarena/pkg/playable/poker/action"
	"zarena/pkg/playable/poker/texasholdem"

	"github.com/pterm/pterm"
)

var errQuit = errors.New("quit")

type repl struct {
	table  *texasholdem.Table
	names  []string
	in     *bufio.Scanner
	auto   bool
	picker rng.Generator

	played    int
	maxRounds int
}

func (r *repl) run() error {
	for !r.table.IsFinished() {
		if !r.auto {
			if err := renderTable(r.table, r.names); err != nil {
				return err
			}
		}

		a, err := r.choose(r.table.LegalActions())
		if errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			return err
		}

		last := r.table.LastResult()
		_, _, done, err := r.table.Step(a, true)
		if errors.Is(err, texasholdem.ErrInvalidAction) {
			pterm.Error.Println(err.Error())
			continue
		} else if err != nil {
			return err
		}

		if result := r.table.LastResult(); result != last {
			renderResult(result, r.names)
			r.played++
			if r.maxRounds > 0 && r.played >= r.maxRounds {
				return nil
			}
		}

		if done {
			pterm.Info.Println("The button has gone around the table")
		}
	}

	pterm.Info.Println("Fewer than two players have credits, the table is finished")
	return nil
}

// choose returns the action for the current seat
// Blinds are posted without asking.
func (r *repl) choose(legal []action.Action) (action.Action, error) {
	if len(legal) == 0 {
		return 0, fmt.Errorf("seat %d has no legal action", r.table.ToPlay())
	}

	if len(legal) == 1 && legal[0].IsForced() {
		return legal[0], nil
	}

	if r.auto {
		return legal[r.picker.Intn(len(legal))], nil
	}

	for {
		options := make([]string, len(legal))
		for i, a := range legal {
			options[i] = fmt.Sprintf("%d) %s", int(a), a)
		}

		pterm.Info.Printfln("%s, choose an action: %s (q to quit)", r.names[r.table.ToPlay()], strings.Join(options, "  "))
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return 0, err
			}

			return 0, errQuit
		}

		line := strings.TrimSpace(r.in.Text())
		if line == "q" || line == "quit" {
			return 0, errQuit
		}

		code, err := strconv.Atoi(line)
		if err != nil {
			pterm.Error.Printfln("%q is not an action code", line)
			continue
		}

		a, err := action.FromInt(code)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}

		return a, nil
	}
}
