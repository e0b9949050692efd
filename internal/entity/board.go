package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const boardSize = 3

var ErrInvalidBoard = errors.New("invalid board")

// WinLines holds the 8 winning lines as (row, column) triples.
var WinLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid. It is a value type: assigning or passing it copies all
// cells, so a board handed out is never changed by later moves.
type Board [boardSize][boardSize]Piece

func NewBoard() Board {
	var board Board
	for row := range board {
		for col := range board[row] {
			board[row][col] = EmptyCell
		}
	}
	return board
}

// ParseBoard reads the 3-row text form, e.g. ["x..", ".o.", "..."].
func ParseBoard(rows []string) (Board, error) {
	var board Board

	if len(rows) != boardSize {
		return board, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, boardSize, len(rows))
	}

	for row, line := range rows {
		if len(line) != boardSize {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, row, len(line))
		}

		for col := 0; col < boardSize; col++ {
			cell := Piece(line[col : col+1])
			if cell != EmptyCell && !cell.IsValid() {
				return board, fmt.Errorf("%w: unknown cell %q", ErrInvalidBoard, cell)
			}
			board[row][col] = cell
		}
	}

	return board, nil
}

// MustParseBoard is ParseBoard for literals in tests and fixtures.
func MustParseBoard(rows ...string) Board {
	board, err := ParseBoard(rows)
	if err != nil {
		panic(err)
	}
	return board
}

// Rows returns the 3-row text form.
func (that Board) Rows() []string {
	rows := make([]string, 0, boardSize)
	for _, line := range that {
		var sb strings.Builder
		for _, cell := range line {
			if cell == "" {
				cell = EmptyCell
			}
			sb.WriteString(string(cell))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func (that Board) String() string {
	return strings.Join(that.Rows(), "/")
}

// Place returns a copy of the board with the cell at (row, col) set to piece.
func (that Board) Place(row, col int, piece Piece) Board {
	next := that
	next[row][col] = piece
	return next
}

func (that Board) Count(piece Piece) int {
	count := 0
	for _, line := range that {
		for _, cell := range line {
			if cell == piece {
				count++
			}
		}
	}
	return count
}

func (that Board) IsFull() bool {
	for _, line := range that {
		for _, cell := range line {
			if cell != PieceX && cell != PieceO {
				return false
			}
		}
	}
	return true
}

func (that Board) IsEmpty() bool {
	return that.Count(PieceX) == 0 && that.Count(PieceO) == 0
}

func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Rows())
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	board, err := ParseBoard(rows)
	if err != nil {
		return err
	}

	*that = board
	return nil
}
