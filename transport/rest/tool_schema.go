package rest

import "github.com/rocketscienceinc/voice-tictactoe/internal/entity"

const toolDescription = "Play tic-tac-toe. Use type \"move\" to place a piece for the player or the computer, " +
	"or type \"new_game\" to start over. Relay any error message to the player verbatim."

// ToolSchema is the function definition registered with the voice provider.
type ToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

func NewToolSchema(name string) ToolSchema {
	squares := make([]string, 0, len(entity.Squares))
	for _, square := range entity.Squares {
		squares = append(squares, string(square))
	}

	return ToolSchema{
		Name:        name,
		Description: toolDescription,
		Parameters: map[string]any{
			"type":     "object",
			"required": []string{"type"},
			"properties": map[string]any{
				"type": map[string]any{
					"type": "string",
					"enum": []string{entity.ActionMove, entity.ActionNewGame},
				},
				"move": map[string]any{
					"type":     "object",
					"required": []string{"who", "where"},
					"properties": map[string]any{
						"who": map[string]any{
							"type": "string",
							"enum": []string{string(entity.ParticipantPlayer), string(entity.ParticipantComputer)},
						},
						"where": map[string]any{
							"type": "string",
							"enum": squares,
						},
					},
				},
			},
		},
	}
}
