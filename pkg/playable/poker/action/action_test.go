package action

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFromInt(t *testing.T) {
	assertAction := func(t *testing.T, id int, action Action, name string) {
		t.Helper()

		a, err := FromInt(id)
		assert.NoError(t, err)
		assert.Equal(t, action, a)
		assert.Equal(t, name, a.String())
	}

	assertAction(t, 0, SmallBlind, "Small blind")
	assertAction(t, 1, BigBlind, "Big blind")
	assertAction(t, 2, Fold, "Fold")
	assertAction(t, 3, Check, "Check")
	assertAction(t, 4, Bet, "Bet")
	assertAction(t, 5, Call, "Call")
	assertAction(t, 6, Raise25, "Raise to 25")
	assertAction(t, 7, Raise50, "Raise to 50")
	assertAction(t, 8, Raise100, "Raise to 100")
	assertAction(t, 9, Raise500, "Raise to 500")
	assertAction(t, 10, Raise1000, "Raise to 1000")
	assertAction(t, 11, AllIn, "All-in")

	_, err := FromInt(-1)
	assert.EqualError(t, err, "no action with id -1")

	_, err = FromInt(12)
	assert.EqualError(t, err, "no action with id 12")
}

func TestAction_RaiseTo(t *testing.T) {
	a := assert.New(t)

	amount, ok := Raise500.RaiseTo()
	a.True(ok)
	a.Equal(500, amount)

	_, ok = Call.RaiseTo()
	a.False(ok)

	a.True(SmallBlind.IsForced())
	a.True(BigBlind.IsForced())
	a.False(Fold.IsForced())
}

func TestAction_MarshalJSON(t *testing.T) {
	b, err := Raise50.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Raise to 50"}`, string(b))
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("posted the small blind of 5", SmallBlind.LogMessage(5))
	a.Equal("folded", Fold.LogMessage(0))
	a.Equal("raised to 100", Raise100.LogMessage(100))
	a.Equal("went all-in for 35", AllIn.LogMessage(35))
	a.Equal("", Action(42).LogMessage(0))
	a.Equal("Unknown action (42)", Action(42).String())
}

func TestCodes(t *testing.T) {
	assert.Equal(t, []int{2, 5, 11}, Codes([]Action{Fold, Call, AllIn}))
}
