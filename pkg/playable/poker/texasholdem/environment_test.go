package texasholdem

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
	"zarena/pkg/playable"
	"zarena/pkg/playable/poker/action"
)

func TestEnvironment(t *testing.T) {
	a := assert.New(t)
	table := setupTable(DefaultOptions(), 1000, 1000, 1000)
	env := table.Environment()

	a.Equal("Texas Hold'em", env.Name())
	a.Equal(1, env.ToPlay())
	a.Equal([]int{int(action.SmallBlind)}, env.LegalActions())

	_, err := env.Step(42, true)
	a.EqualError(err, "no action with id 42")
	a.True(errors.Is(err, ErrInvalidAction))

	result, err := env.Step(int(action.SmallBlind), true)
	a.NoError(err)
	a.Equal(0, result.ToPlay)
	a.Equal([]int{0, 0, 0}, result.Rewards)
	a.False(result.Done)
	a.IsType(Observation{}, result.Observation)

	res, err := playable.Dispatch(env, &playable.PayloadIn{
		Action:         "step",
		AdditionalData: playable.AdditionalData{"action": float64(action.Fold)},
	})
	a.NoError(err)
	a.Equal(1, res.Data.(*playable.StepResult).ToPlay)

	state, ok := env.State().(*Snapshot)
	a.True(ok)
	a.Equal(2, state.PlayersInHand)

	obs, err := env.Reset()
	a.NoError(err)
	a.Equal(table.Observation(), obs)
	a.Equal(3, table.PlayersInHand())
}
