package entity

import "encoding/json"

const (
	MessageToolCall     = "tool_call"
	MessageToolResponse = "tool_response"
	MessageToolError    = "tool_error"

	IllegalMoveCode    = "Illegal move"
	IllegalMoveMessage = "You have attempted to make an illegal move. Law enforcement has been contacted and is on route to your location."
)

// ToolCall is a function invocation delivered by the voice provider.
type ToolCall struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	ToolCallID string `json:"tool_call_id"`
	Parameters string `json:"parameters"`
}

// ToolMessage is the single reply to a tool call: a tool_response or a tool_error.
type ToolMessage struct {
	Type       string `json:"type"`
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (that *ToolMessage) IsError() bool {
	return that.Type == MessageToolError
}

// MoveContent is sent after a move that keeps the game going.
type MoveContent struct {
	NewBoard Board      `json:"newBoard"`
	Result   GameResult `json:"result"`
}

// GameOverContent is sent after a win or draw; Board is already reset.
type GameOverContent struct {
	Board         Board      `json:"board"`
	Result        GameResult `json:"result"`
	ComputerPiece Piece      `json:"computerPiece"`
}

// NewGameContent is sent after an explicit new game request.
type NewGameContent struct {
	Board         Board `json:"board"`
	ComputerPiece Piece `json:"computerPiece"`
	WhoseMove     Piece `json:"whoseMove"`
}

func NewToolResponse(callID string, content any) (*ToolMessage, error) {
	data, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}

	return &ToolMessage{
		Type:       MessageToolResponse,
		ToolCallID: callID,
		Content:    string(data),
	}, nil
}

func NewIllegalMoveError(callID string) *ToolMessage {
	return &ToolMessage{
		Type:       MessageToolError,
		ToolCallID: callID,
		Error:      IllegalMoveCode,
		Content:    IllegalMoveMessage,
	}
}
