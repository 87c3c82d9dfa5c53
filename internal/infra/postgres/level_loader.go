package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"esl-arcade-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// LevelLoader loads level JSONB from Postgres.
type LevelLoader struct {
	pool *pgxpool.Pool
}

func NewLevelLoader(pool *pgxpool.Pool) *LevelLoader {
	return &LevelLoader{pool: pool}
}

func (l *LevelLoader) LoadLevel(ctx context.Context, levelID string) (domain.Level, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM levels WHERE id=$1`, levelID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Level{}, domain.ErrLevelNotFound
	}
	if err != nil {
		return domain.Level{}, fmt.Errorf("load level: %w", err)
	}
	var level domain.Level
	if err := json.Unmarshal(raw, &level); err != nil {
		return domain.Level{}, fmt.Errorf("unmarshal level: %w", err)
	}
	return level, nil
}

func (l *LevelLoader) ListLevels(ctx context.Context) ([]domain.LevelSummary, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM levels ORDER BY (data->>'number')::int`)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()

	var menu []domain.LevelSummary
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		var level domain.Level
		if err := json.Unmarshal(raw, &level); err != nil {
			return nil, fmt.Errorf("unmarshal level: %w", err)
		}
		menu = append(menu, level.Summary())
	}
	return menu, rows.Err()
}
