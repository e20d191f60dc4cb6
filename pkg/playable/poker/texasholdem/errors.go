package texasholdem

import (
	"errors"
	"fmt"
)

// ErrInvalidAction matches every ParticipantError
// The driver should re-prompt the player; the table did not change
var ErrInvalidAction = errors.New("invalid action")

// ErrImpossibleState matches every InvalidStateError
var ErrImpossibleState = errors.New("impossible state")

// ErrTableFinished is returned when fewer than two players have credits left
var ErrTableFinished = errors.New("fewer than two players have credits")

// ParticipantError is an error that happened because of a participant error
type ParticipantError string

func (p ParticipantError) Error() string {
	return string(p)
}

// Is makes errors.Is(err, ErrInvalidAction) true
func (p ParticipantError) Is(target error) bool {
	return target == ErrInvalidAction
}

func newParticipantError(format string, a ...interface{}) ParticipantError {
	return ParticipantError(fmt.Sprintf(format, a...))
}

// InvalidStateError signals a broken internal invariant, never a user mistake
type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

// Is makes errors.Is(err, ErrImpossibleState) true
func (e InvalidStateError) Is(target error) bool {
	return target == ErrImpossibleState
}

func newInvalidStateError(format string, a ...interface{}) InvalidStateError {
	return InvalidStateError(fmt.Sprintf(format, a...))
}
