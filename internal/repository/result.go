package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
)

type ResultRepository interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	Recent(ctx context.Context, limit int) ([]entity.GameRecord, error)
}

type resultRepository struct {
	conn *sqlx.DB
}

func NewResultRepository(conn *sqlx.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, record *entity.GameRecord) error {
	query := `INSERT INTO game_results (session_id, result, computer_piece, final_board, finished_at)
		VALUES (:session_id, :result, :computer_piece, :final_board, :finished_at)`

	if _, err := that.conn.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("can't save game result: %w", err)
	}

	return nil
}

func (that *resultRepository) Recent(ctx context.Context, limit int) ([]entity.GameRecord, error) {
	query := `SELECT session_id, result, computer_piece, final_board, finished_at
		FROM game_results ORDER BY finished_at DESC, id DESC LIMIT ?`

	records := make([]entity.GameRecord, 0, limit)
	if err := that.conn.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("can't list game results: %w", err)
	}

	return records, nil
}

type nopResultRepository struct{}

// NewNopResultRepository is used when no journal storage is configured.
func NewNopResultRepository() ResultRepository {
	return nopResultRepository{}
}

func (nopResultRepository) Save(context.Context, *entity.GameRecord) error {
	return nil
}

func (nopResultRepository) Recent(context.Context, int) ([]entity.GameRecord, error) {
	return []entity.GameRecord{}, nil
}
