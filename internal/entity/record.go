package entity

import "time"

// GameRecord is one finished game kept in the results journal.
type GameRecord struct {
	SessionID     string     `json:"session_id" db:"session_id"`
	Result        GameResult `json:"result" db:"result"`
	ComputerPiece Piece      `json:"computer_piece" db:"computer_piece"`
	FinalBoard    string     `json:"final_board" db:"final_board"`
	FinishedAt    time.Time  `json:"finished_at" db:"finished_at"`
}
