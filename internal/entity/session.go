package entity

import "time"

const DefaultProcessedCallsLimit = 1024

// Session is the game state of one voice connection.
type Session struct {
	ID            string    `json:"id"`
	Board         Board     `json:"board"`
	ComputerPiece Piece     `json:"computer_piece"`
	WhoseMove     Piece     `json:"whose_move"`
	GameNumber    int       `json:"game_number"`
	CreatedAt     time.Time `json:"created_at"`

	// ProcessedCalls holds the most recent tool call ids, oldest first.
	ProcessedCalls []string `json:"processed_calls,omitempty"`
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:            id,
		Board:         NewBoard(),
		ComputerPiece: PieceO,
		WhoseMove:     PieceX,
		GameNumber:    1,
		CreatedAt:     now,
	}
}

// PlayerPiece is the piece held by the human side.
func (that *Session) PlayerPiece() Piece {
	return that.ComputerPiece.Other()
}

// PieceFor resolves who is moving into the piece they hold this game.
func (that *Session) PieceFor(who Participant) Piece {
	if who == ParticipantComputer {
		return that.ComputerPiece
	}
	return that.PlayerPiece()
}

// IsProcessed reports whether the tool call id was already handled.
func (that *Session) IsProcessed(callID string) bool {
	for _, id := range that.ProcessedCalls {
		if id == callID {
			return true
		}
	}
	return false
}

// MarkProcessed records callID and returns false if it was already recorded.
// Only the latest limit ids are kept; a limit <= 0 uses DefaultProcessedCallsLimit.
func (that *Session) MarkProcessed(callID string, limit int) bool {
	if that.IsProcessed(callID) {
		return false
	}

	if limit <= 0 {
		limit = DefaultProcessedCallsLimit
	}

	that.ProcessedCalls = append(that.ProcessedCalls, callID)
	if overflow := len(that.ProcessedCalls) - limit; overflow > 0 {
		that.ProcessedCalls = append([]string(nil), that.ProcessedCalls[overflow:]...)
	}

	return true
}

// Clone returns a deep copy safe to hand across goroutines.
func (that *Session) Clone() *Session {
	if that == nil {
		return nil
	}

	clone := *that
	clone.ProcessedCalls = append([]string(nil), that.ProcessedCalls...)
	return &clone
}
