package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/voice-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
)

// AttemptMove places move on a copy of board and classifies the outcome.
// On failure the original board is returned.
func AttemptMove(board entity.Board, move entity.Move) (entity.Board, entity.GameResult) {
	if err := ValidateMove(board, move); err != nil {
		return board, entity.ResultFailure
	}

	row, col, _ := move.Square.Coordinates()
	newBoard := board.Place(row, col, move.Piece)

	return newBoard, CheckBoard(newBoard)
}

// StartNewGame returns an empty board and the piece the computer holds next game.
func StartNewGame(computerPiece entity.Piece) (entity.Board, entity.Piece) {
	return entity.NewBoard(), computerPiece.Other()
}

// ValidateMove reports why a move is illegal, or nil if AttemptMove would accept it.
func ValidateMove(board entity.Board, move entity.Move) error {
	row, col, ok := move.Square.Coordinates()
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidSquare, move.Square)
	}

	if !move.Piece.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPiece, move.Piece)
	}

	if cell := board[row][col]; cell == entity.PieceX || cell == entity.PieceO {
		return apperror.ErrCellOccupied
	}

	if !validPieceCounts(board.Place(row, col, move.Piece)) {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// CheckBoard classifies a board as a win, a draw or a game still in progress.
func CheckBoard(board entity.Board) entity.GameResult {
	for _, line := range entity.WinLines {
		a, b, c := board[line[0][0]][line[0][1]], board[line[1][0]][line[1][1]], board[line[2][0]][line[2][1]]

		if a == entity.PieceX && b == entity.PieceX && c == entity.PieceX {
			return entity.ResultXWins
		}

		if a == entity.PieceO && b == entity.PieceO && c == entity.PieceO {
			return entity.ResultOWins
		}
	}

	// a win on the last cell beats the draw
	if board.IsFull() {
		return entity.ResultDraw
	}

	return entity.ResultSuccess
}

// validPieceCounts holds while X leads O by zero or one piece.
func validPieceCounts(board entity.Board) bool {
	xCount := board.Count(entity.PieceX)
	oCount := board.Count(entity.PieceO)

	return oCount <= xCount && xCount <= oCount+1
}
