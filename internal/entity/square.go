package entity

const (
	SquareTopLeft     Square = "top left"
	SquareTop         Square = "top"
	SquareTopRight    Square = "top right"
	SquareLeft        Square = "left"
	SquareCenter      Square = "center"
	SquareRight       Square = "right"
	SquareBottomLeft  Square = "bottom left"
	SquareBottom      Square = "bottom"
	SquareBottomRight Square = "bottom right"
)

// Square is a named board position as spoken by the voice assistant.
type Square string

var squareCoordinates = map[Square][2]int{
	SquareTopLeft:     {0, 0},
	SquareTop:         {0, 1},
	SquareTopRight:    {0, 2},
	SquareLeft:        {1, 0},
	SquareCenter:      {1, 1},
	SquareRight:       {1, 2},
	SquareBottomLeft:  {2, 0},
	SquareBottom:      {2, 1},
	SquareBottomRight: {2, 2},
}

// Squares lists every square in row-major order.
var Squares = []Square{
	SquareTopLeft, SquareTop, SquareTopRight,
	SquareLeft, SquareCenter, SquareRight,
	SquareBottomLeft, SquareBottom, SquareBottomRight,
}

// Coordinates returns the (row, column) of the square.
func (that Square) Coordinates() (int, int, bool) {
	coords, ok := squareCoordinates[that]
	if !ok {
		return 0, 0, false
	}
	return coords[0], coords[1], true
}

func (that Square) IsValid() bool {
	_, ok := squareCoordinates[that]
	return ok
}

// Move is an attempted placement of a piece.
type Move struct {
	Piece  Piece  `json:"piece"`
	Square Square `json:"square"`
}
