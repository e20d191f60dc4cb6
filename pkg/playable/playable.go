package playable

import (
	"encoding/json"
	"fmt"
	"math"
)

// Environment is a turn-based game driven one action code at a time
type Environment interface {
	// Name returns the name of the game
	Name() string

	// Reset starts a new round and returns the observation for the first player to act
	Reset() (interface{}, error)

	// LegalActions returns the action codes the player to act may submit
	LegalActions() []int

	// Step performs the action for the player to act
	// An illegal action returns an error and leaves the game unchanged
	Step(code int, advanceTurn bool) (*StepResult, error)

	// ToPlay returns the seat of the player to act
	ToPlay() int

	// State returns a serializable snapshot of the game
	State() interface{}
}

// StepResult is returned after every successful step
type StepResult struct {
	Observation interface{} `json:"observation"`
	Rewards     []int       `json:"rewards"`
	Done        bool        `json:"done"`
	ToPlay      int         `json:"toPlay"`
}

// Response is a container for what is sent back to a driver
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from a driver
type PayloadIn struct {
	Action         string         `json:"action"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// ParsePayload decodes a single JSON message
func ParsePayload(data []byte) (*PayloadIn, error) {
	var payload PayloadIn
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("could not parse payload: %w", err)
	}

	return &payload, nil
}

// Dispatch performs the payload's action against the environment
func Dispatch(env Environment, payload *PayloadIn) (*Response, error) {
	res := OK(payload.Context)
	res.Key = payload.Action

	switch payload.Action {
	case "reset":
		obs, err := env.Reset()
		if err != nil {
			return nil, err
		}

		res.Data = obs
	case "step":
		code, ok := payload.AdditionalData.GetInt("action")
		if !ok {
			return nil, fmt.Errorf("step requires an integer action")
		}

		advanceTurn, ok := payload.AdditionalData.GetBool("advanceTurn")
		if !ok {
			advanceTurn = true
		}

		result, err := env.Step(code, advanceTurn)
		if err != nil {
			return nil, err
		}

		res.Data = result
	case "legalActions":
		res.Data = env.LegalActions()
	case "toPlay":
		res.Data = env.ToPlay()
	case "state":
		res.Data = env.State()
	default:
		return nil, fmt.Errorf("unknown action: %s", payload.Action)
	}

	return res, nil
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetInt returns an integer value for the given key
// A JSON number with a fractional part is not an integer.
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		if val != math.Trunc(val) {
			return 0, false
		}

		return int(val), true
	case int:
		return val, true
	}

	return 0, false
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}
