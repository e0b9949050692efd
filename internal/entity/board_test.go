package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// Given: a fresh board
	board := NewBoard()

	// Then: every cell is empty
	assert.Equal(t, []string{"...", "...", "..."}, board.Rows())
	assert.True(t, board.IsEmpty())
	assert.False(t, board.IsFull())
}

func TestBoard_Place(t *testing.T) {
	// Given: an empty board
	board := NewBoard()

	// When: a piece is placed in the center
	next := board.Place(1, 1, PieceX)

	// Then: the new board has the piece and the original is untouched
	assert.Equal(t, []string{"...", ".x.", "..."}, next.Rows())
	assert.Equal(t, []string{"...", "...", "..."}, board.Rows())
}

func TestBoard_Count(t *testing.T) {
	board := MustParseBoard("xxo", "oxo", "ox.")

	assert.Equal(t, 4, board.Count(PieceX))
	assert.Equal(t, 4, board.Count(PieceO))
	assert.Equal(t, 1, board.Count(EmptyCell))
	assert.False(t, board.IsFull())
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses a valid board", func(t *testing.T) {
		board, err := ParseBoard([]string{"x.o", "...", "..x"})
		require.NoError(t, err)

		assert.Equal(t, PieceX, board[0][0])
		assert.Equal(t, PieceO, board[0][2])
		assert.Equal(t, PieceX, board[2][2])
	})

	t.Run("Rejects wrong number of rows", func(t *testing.T) {
		_, err := ParseBoard([]string{"...", "..."})
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects short rows", func(t *testing.T) {
		_, err := ParseBoard([]string{"...", "..", "..."})
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects unknown cells", func(t *testing.T) {
		_, err := ParseBoard([]string{"...", ".X.", "..."})
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Marshals as three rows", func(t *testing.T) {
		board := MustParseBoard("x..", ".o.", "...")

		data, err := json.Marshal(board)
		require.NoError(t, err)

		assert.JSONEq(t, `["x..",".o.","..."]`, string(data))
	})

	t.Run("Rejects malformed rows on unmarshal", func(t *testing.T) {
		var board Board
		err := json.Unmarshal([]byte(`["x..",".o."]`), &board)

		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Zero value marshals as empty", func(t *testing.T) {
		var board Board

		data, err := json.Marshal(board)
		require.NoError(t, err)

		assert.JSONEq(t, `["...","...","..."]`, string(data))
	})
}

func TestPiece_Other(t *testing.T) {
	for _, piece := range []Piece{PieceX, PieceO} {
		assert.NotEqual(t, piece, piece.Other())
		assert.Equal(t, piece, piece.Other().Other())
	}
}

func TestSquare_Coordinates(t *testing.T) {
	t.Run("Every square maps to a distinct cell", func(t *testing.T) {
		seen := make(map[[2]int]Square)

		for _, square := range Squares {
			row, col, ok := square.Coordinates()
			require.True(t, ok, square)

			_, dup := seen[[2]int{row, col}]
			assert.False(t, dup, "duplicate cell for %q", square)
			seen[[2]int{row, col}] = square
		}

		assert.Len(t, seen, 9)
	})

	t.Run("Unknown square", func(t *testing.T) {
		_, _, ok := Square("middle").Coordinates()
		assert.False(t, ok)
	})
}
