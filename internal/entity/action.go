package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	ActionMove    = "move"
	ActionNewGame = "new_game"

	ParticipantPlayer   Participant = "player"
	ParticipantComputer Participant = "computer"
)

var (
	ErrMalformedAction = errors.New("malformed action")
	ErrUnknownAction   = errors.New("unknown action type")
)

// Participant names the side requesting a move.
type Participant string

// Action is one decoded tool call payload: either a MoveAction or a NewGameAction.
type Action interface {
	actionType() string
}

type MoveAction struct {
	Who   Participant
	Where Square
}

type NewGameAction struct{}

func (MoveAction) actionType() string    { return ActionMove }
func (NewGameAction) actionType() string { return ActionNewGame }

type actionPayload struct {
	Type string `json:"type"`
	Move *struct {
		Who   Participant `json:"who"`
		Where Square      `json:"where"`
	} `json:"move,omitempty"`
}

// DecodeAction parses tool call parameters. Anything other than the two known
// shapes is rejected so the caller can ignore it.
func DecodeAction(parameters string) (Action, error) {
	var payload actionPayload
	if err := json.Unmarshal([]byte(parameters), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAction, err)
	}

	switch strings.TrimSpace(payload.Type) {
	case ActionMove:
		if payload.Move == nil {
			return nil, fmt.Errorf("%w: move is required", ErrMalformedAction)
		}
		if payload.Move.Who != ParticipantPlayer && payload.Move.Who != ParticipantComputer {
			return nil, fmt.Errorf("%w: unknown participant %q", ErrMalformedAction, payload.Move.Who)
		}
		if !payload.Move.Where.IsValid() {
			return nil, fmt.Errorf("%w: unknown square %q", ErrMalformedAction, payload.Move.Where)
		}
		return MoveAction{Who: payload.Move.Who, Where: payload.Move.Where}, nil
	case ActionNewGame:
		return NewGameAction{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, payload.Type)
	}
}
