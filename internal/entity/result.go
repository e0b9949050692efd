package entity

const (
	ResultSuccess GameResult = "success"
	ResultFailure GameResult = "failure"
	ResultXWins   GameResult = "x wins"
	ResultOWins   GameResult = "o wins"
	ResultDraw    GameResult = "draw"
)

// GameResult is the outcome of attempting a move.
type GameResult string

// IsTerminal reports whether the result ends the game.
func (that GameResult) IsTerminal() bool {
	return that == ResultXWins || that == ResultOWins || that == ResultDraw
}
