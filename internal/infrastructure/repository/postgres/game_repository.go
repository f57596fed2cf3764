package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/matchday/internal/domain/game"
)

const (
	gameSelectColumns = `id, public_id, played_on, side_a_names, side_b_names,
	side_a_score, side_b_score, attendee_names, paid_names, payment_policy, winner, created_at`

	gameListQuery = `
SELECT ` + gameSelectColumns + `
FROM game_records
ORDER BY played_on DESC, id DESC`

	gameListRecentQuery = gameListQuery + `
LIMIT $1`

	gameInsertQuery = `
INSERT INTO game_records (
	public_id, played_on, side_a_names, side_b_names, side_a_score, side_b_score,
	attendee_names, paid_names, payment_policy, winner
) VALUES (
	:public_id, :played_on, :side_a_names, :side_b_names, :side_a_score, :side_b_score,
	:attendee_names, :paid_names, :payment_policy, :winner
)`
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) List(ctx context.Context) ([]game.Record, error) {
	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, gameListQuery); err != nil {
		return nil, fmt.Errorf("list game records: %w", err)
	}

	return gameRecordsFromRows(rows), nil
}

func (r *GameRepository) ListRecent(ctx context.Context, limit int) ([]game.Record, error) {
	if limit <= 0 {
		return []game.Record{}, nil
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, gameListRecentQuery, limit); err != nil {
		return nil, fmt.Errorf("list recent game records: %w", err)
	}

	return gameRecordsFromRows(rows), nil
}

func (r *GameRepository) Create(ctx context.Context, rec game.Record) error {
	query, args, err := sqlx.Named(gameInsertQuery, gameRowFromRecord(rec))
	if err != nil {
		return fmt.Errorf("bind game record insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("insert game record: %w", err)
	}

	return nil
}

func gameRecordsFromRows(rows []gameTableModel) []game.Record {
	out := make([]game.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameRecordFromRow(row))
	}
	return out
}
