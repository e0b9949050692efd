package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction(t *testing.T) {
	t.Run("Decodes a move", func(t *testing.T) {
		action, err := DecodeAction(`{"type":"move","move":{"who":"player","where":"top left"}}`)
		require.NoError(t, err)

		assert.Equal(t, MoveAction{Who: ParticipantPlayer, Where: SquareTopLeft}, action)
	})

	t.Run("Decodes a new game", func(t *testing.T) {
		action, err := DecodeAction(`{"type":"new_game"}`)
		require.NoError(t, err)

		assert.Equal(t, NewGameAction{}, action)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		cases := map[string]string{
			"not json":         `{"type":`,
			"unknown type":     `{"type":"resign"}`,
			"missing move":     `{"type":"move"}`,
			"unknown who":      `{"type":"move","move":{"who":"referee","where":"top"}}`,
			"unknown square":   `{"type":"move","move":{"who":"player","where":"middle"}}`,
			"missing type":     `{}`,
			"wrong field type": `{"type":"move","move":{"who":1,"where":"top"}}`,
		}

		for name, parameters := range cases {
			t.Run(name, func(t *testing.T) {
				action, err := DecodeAction(parameters)

				require.Error(t, err)
				assert.Nil(t, action)
			})
		}
	})

	t.Run("Unknown type is distinguishable from malformed input", func(t *testing.T) {
		_, err := DecodeAction(`{"type":"resign"}`)
		assert.ErrorIs(t, err, ErrUnknownAction)

		_, err = DecodeAction(`[]`)
		assert.ErrorIs(t, err, ErrMalformedAction)
	})
}

func TestNewToolResponse(t *testing.T) {
	// Given: content for a successful move
	content := MoveContent{NewBoard: MustParseBoard("...", ".x.", "..."), Result: ResultSuccess}

	// When: it is wrapped into a tool response
	msg, err := NewToolResponse("call-1", content)
	require.NoError(t, err)

	// Then: the content is the JSON text the voice provider expects
	assert.Equal(t, MessageToolResponse, msg.Type)
	assert.Equal(t, "call-1", msg.ToolCallID)
	assert.JSONEq(t, `{"newBoard":["...",".x.","..."],"result":"success"}`, msg.Content)
	assert.False(t, msg.IsError())
}

func TestNewIllegalMoveError(t *testing.T) {
	msg := NewIllegalMoveError("call-1")

	assert.True(t, msg.IsError())
	assert.Equal(t, IllegalMoveCode, msg.Error)
	assert.Equal(t, IllegalMoveMessage, msg.Content)

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"tool_error","tool_call_id":"call-1","error":"Illegal move","content":"`+IllegalMoveMessage+`"}`, string(data))
}
