package apperror

import "errors"

var (
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrInvalidSquare   = errors.New("invalid square")
	ErrInvalidPiece    = errors.New("invalid piece")
	ErrSessionNotFound = errors.New("session not found")
)
