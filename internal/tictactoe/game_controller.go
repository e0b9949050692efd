package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
)

// Outcome is what applying one action to a session produced.
type Outcome struct {
	Message *entity.ToolMessage
	Result  entity.GameResult

	// FinalBoard is the board that ended the game. Set only for terminal results.
	FinalBoard entity.Board
	// Reason explains a failure for logs; it never reaches the voice provider.
	Reason error
}

// GameOver reports whether the action finished a game.
func (that *Outcome) GameOver() bool {
	return that.Result.IsTerminal()
}

// Apply runs action against session, mutating it in place, and builds the reply for callID.
func Apply(session *entity.Session, callID string, action entity.Action) (*Outcome, error) {
	switch act := action.(type) {
	case entity.MoveAction:
		return applyMove(session, callID, act)
	case entity.NewGameAction:
		return applyNewGame(session, callID)
	default:
		return nil, fmt.Errorf("%w: %T", entity.ErrUnknownAction, action)
	}
}

func applyMove(session *entity.Session, callID string, action entity.MoveAction) (*Outcome, error) {
	move := entity.Move{
		Piece:  session.PieceFor(action.Who),
		Square: action.Where,
	}

	newBoard, result := AttemptMove(session.Board, move)

	switch result {
	case entity.ResultFailure:
		return &Outcome{
			Message: entity.NewIllegalMoveError(callID),
			Result:  result,
			Reason:  ValidateMove(session.Board, move),
		}, nil

	case entity.ResultSuccess:
		msg, err := entity.NewToolResponse(callID, entity.MoveContent{NewBoard: newBoard, Result: result})
		if err != nil {
			return nil, fmt.Errorf("failed to build move response: %w", err)
		}

		session.Board = newBoard
		session.WhoseMove = session.WhoseMove.Other()

		return &Outcome{Message: msg, Result: result}, nil

	default:
		resetGame(session)

		msg, err := entity.NewToolResponse(callID, entity.GameOverContent{
			Board:         session.Board,
			Result:        result,
			ComputerPiece: session.ComputerPiece,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build game over response: %w", err)
		}

		return &Outcome{Message: msg, Result: result, FinalBoard: newBoard}, nil
	}
}

func applyNewGame(session *entity.Session, callID string) (*Outcome, error) {
	resetGame(session)

	msg, err := entity.NewToolResponse(callID, entity.NewGameContent{
		Board:         session.Board,
		ComputerPiece: session.ComputerPiece,
		WhoseMove:     session.WhoseMove,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build new game response: %w", err)
	}

	return &Outcome{Message: msg}, nil
}

func resetGame(session *entity.Session) {
	session.Board, session.ComputerPiece = StartNewGame(session.ComputerPiece)
	session.WhoseMove = entity.PieceX
	session.GameNumber++
}
