package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/voice-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
)

func TestAttemptMove(t *testing.T) {
	t.Run("First move on an empty board", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()

		// When: X moves to the center
		newBoard, result := AttemptMove(board, entity.Move{Piece: entity.PieceX, Square: entity.SquareCenter})

		// Then: the center holds X and the game goes on
		assert.Equal(t, entity.ResultSuccess, result)
		assert.Equal(t, []string{"...", ".x.", "..."}, newBoard.Rows())

		// And: the original board is untouched
		assert.True(t, board.IsEmpty())
	})

	t.Run("Occupied square is rejected", func(t *testing.T) {
		// Given: a board with X in the center
		board := entity.MustParseBoard("...", ".x.", "...")

		// When: O tries to take the center
		newBoard, result := AttemptMove(board, entity.Move{Piece: entity.PieceO, Square: entity.SquareCenter})

		// Then: the move fails and the board is unchanged
		assert.Equal(t, entity.ResultFailure, result)
		assert.Equal(t, board, newBoard)
	})

	t.Run("Occupied square is rejected for the owner too", func(t *testing.T) {
		board := entity.MustParseBoard("...", ".x.", "...")

		newBoard, result := AttemptMove(board, entity.Move{Piece: entity.PieceX, Square: entity.SquareCenter})

		assert.Equal(t, entity.ResultFailure, result)
		assert.Equal(t, board, newBoard)
	})

	t.Run("O cannot move first", func(t *testing.T) {
		board := entity.NewBoard()

		newBoard, result := AttemptMove(board, entity.Move{Piece: entity.PieceO, Square: entity.SquareTop})

		assert.Equal(t, entity.ResultFailure, result)
		assert.True(t, newBoard.IsEmpty())
	})

	t.Run("X cannot move twice in a row", func(t *testing.T) {
		board := entity.MustParseBoard("x..", "...", "...")

		newBoard, result := AttemptMove(board, entity.Move{Piece: entity.PieceX, Square: entity.SquareBottom})

		assert.Equal(t, entity.ResultFailure, result)
		assert.Equal(t, board, newBoard)
	})

	t.Run("Invalid square and piece are failures", func(t *testing.T) {
		board := entity.NewBoard()

		_, result := AttemptMove(board, entity.Move{Piece: entity.PieceX, Square: "middle"})
		assert.Equal(t, entity.ResultFailure, result)

		_, result = AttemptMove(board, entity.Move{Piece: entity.EmptyCell, Square: entity.SquareTop})
		assert.Equal(t, entity.ResultFailure, result)
	})

	t.Run("Completing a row wins", func(t *testing.T) {
		// Given: X holds two of the top row and it is X's turn
		board := entity.MustParseBoard("xx.", "oo.", "...")

		// When: X takes the top right corner
		newBoard, result := AttemptMove(board, entity.Move{Piece: entity.PieceX, Square: entity.SquareTopRight})

		// Then: X wins and the winning board is returned
		assert.Equal(t, entity.ResultXWins, result)
		assert.Equal(t, []string{"xxx", "oo.", "..."}, newBoard.Rows())
	})

	t.Run("Win on the last cell beats draw", func(t *testing.T) {
		board := entity.MustParseBoard("xox", "oxo", "ox.")

		newBoard, result := AttemptMove(board, entity.Move{Piece: entity.PieceX, Square: entity.SquareBottomRight})

		assert.True(t, newBoard.IsFull())
		assert.Equal(t, entity.ResultXWins, result)
	})
}

func TestValidateMove(t *testing.T) {
	cases := []struct {
		name  string
		board entity.Board
		move  entity.Move
		err   error
	}{
		{"legal", entity.NewBoard(), entity.Move{Piece: entity.PieceX, Square: entity.SquareTop}, nil},
		{"occupied", entity.MustParseBoard(".x.", "...", "..."), entity.Move{Piece: entity.PieceO, Square: entity.SquareTop}, apperror.ErrCellOccupied},
		{"out of turn", entity.NewBoard(), entity.Move{Piece: entity.PieceO, Square: entity.SquareTop}, apperror.ErrNotYourTurn},
		{"bad square", entity.NewBoard(), entity.Move{Piece: entity.PieceX, Square: "corner"}, apperror.ErrInvalidSquare},
		{"bad piece", entity.NewBoard(), entity.Move{Piece: "z", Square: entity.SquareTop}, apperror.ErrInvalidPiece},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMove(tc.board, tc.move)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestCheckBoard(t *testing.T) {
	cases := map[string]struct {
		rows   []string
		result entity.GameResult
	}{
		"empty":          {[]string{"...", "...", "..."}, entity.ResultSuccess},
		"x row":          {[]string{"...", "xxx", "oo."}, entity.ResultXWins},
		"o column":       {[]string{"xo.", "xo.", ".ox"}, entity.ResultOWins},
		"x diagonal":     {[]string{"xo.", "ox.", "..x"}, entity.ResultXWins},
		"o antidiagonal": {[]string{"xxo", "xo.", "o.."}, entity.ResultOWins},
		"draw":           {[]string{"xox", "xox", "oxo"}, entity.ResultDraw},
		"ongoing":        {[]string{"xo.", ".x.", "..o"}, entity.ResultSuccess},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			board, err := entity.ParseBoard(tc.rows)
			require.NoError(t, err)

			assert.Equal(t, tc.result, CheckBoard(board))
		})
	}
}

func TestStartNewGame(t *testing.T) {
	for _, piece := range []entity.Piece{entity.PieceX, entity.PieceO} {
		board, next := StartNewGame(piece)

		assert.True(t, board.IsEmpty())
		assert.Equal(t, piece.Other(), next)
	}
}

func TestAttemptMove_PieceCountInvariant(t *testing.T) {
	// Given: every legal and illegal move tried from every reachable board
	var walk func(board entity.Board, depth int)

	walk = func(board entity.Board, depth int) {
		for _, square := range entity.Squares {
			for _, piece := range []entity.Piece{entity.PieceX, entity.PieceO} {
				newBoard, result := AttemptMove(board, entity.Move{Piece: piece, Square: square})

				if result == entity.ResultFailure {
					// Then: a failure never changes the board
					require.Equal(t, board, newBoard)
					continue
				}

				// Then: X leads O by zero or one piece after every accepted move
				xCount, oCount := newBoard.Count(entity.PieceX), newBoard.Count(entity.PieceO)
				require.LessOrEqual(t, oCount, xCount)
				require.LessOrEqual(t, xCount, oCount+1)

				if result == entity.ResultSuccess && depth < 4 {
					walk(newBoard, depth+1)
				}
			}
		}
	}

	walk(entity.NewBoard(), 0)
}
