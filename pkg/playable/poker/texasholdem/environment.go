package texasholdem

import (
	"zarena/pkg/playable"
	"zarena/pkg/playable/poker/action"
)

// Name is the name of the game
const Name = "Texas Hold'em"

type environment struct {
	table *Table
}

// Environment returns the table as a playable.Environment
func (t *Table) Environment() playable.Environment {
	return &environment{table: t}
}

func (e *environment) Name() string {
	return Name
}

func (e *environment) Reset() (interface{}, error) {
	obs, err := e.table.Reset()
	if err != nil {
		return nil, err
	}

	return obs, nil
}

func (e *environment) LegalActions() []int {
	return action.Codes(e.table.LegalActions())
}

func (e *environment) Step(code int, advanceTurn bool) (*playable.StepResult, error) {
	a, err := action.FromInt(code)
	if err != nil {
		return nil, newParticipantError("%s", err)
	}

	obs, rewards, done, err := e.table.Step(a, advanceTurn)
	if err != nil {
		return nil, err
	}

	return &playable.StepResult{
		Observation: obs,
		Rewards:     rewards,
		Done:        done,
		ToPlay:      e.table.ToPlay(),
	}, nil
}

func (e *environment) ToPlay() int {
	return e.table.ToPlay()
}

func (e *environment) State() interface{} {
	return e.table.GetState()
}
