package entity

const (
	PieceX Piece = "x"
	PieceO Piece = "o"

	EmptyCell Piece = "."
)

// Piece is a mark on the board. EmptyCell is the zero mark of an unoccupied cell.
type Piece string

// Other returns the opposing piece.
func (that Piece) Other() Piece {
	if that == PieceX {
		return PieceO
	}
	return PieceX
}

func (that Piece) IsValid() bool {
	return that == PieceX || that == PieceO
}
