package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/quoridor-backend/internal/entity"
)

// MatchRecord is one archived finished match.
type MatchRecord struct {
	GameID       string
	Winner       int
	FencesPlaced int
	FinishedAt   time.Time
}

// MatchArchive persists finished matches after their live session is removed.
type MatchArchive interface {
	Save(ctx context.Context, game *entity.Game) error
	Recent(ctx context.Context, limit int) ([]MatchRecord, error)
}

type dbArchive struct {
	conn *sql.DB
}

func NewMatchArchive(conn *sql.DB) MatchArchive {
	return &dbArchive{
		conn: conn,
	}
}

func (that *dbArchive) Save(ctx context.Context, game *entity.Game) error {
	query := `INSERT OR REPLACE INTO matches (id, winner, fences_placed, finished_at) VALUES (?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, game.ID, game.Winner, len(game.Board.Fences), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to archive match: %w", err)
	}

	return nil
}

func (that *dbArchive) Recent(ctx context.Context, limit int) ([]MatchRecord, error) {
	query := `SELECT id, winner, fences_placed, finished_at FROM matches ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var record MatchRecord
		if err = rows.Scan(&record.GameID, &record.Winner, &record.FencesPlaced, &record.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan archived match: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate archived matches: %w", err)
	}

	return records, nil
}
