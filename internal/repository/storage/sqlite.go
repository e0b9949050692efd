package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	Connection *sqlx.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	// sqlite allows one writer at a time
	conn.SetMaxOpenConns(1)

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS game_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		result TEXT NOT NULL,
		computer_piece TEXT NOT NULL,
		final_board TEXT NOT NULL,
		finished_at TIMESTAMP NOT NULL
	)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
