package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/matchday/internal/domain/assignment"
)

// team_assignments holds one row: the current split. Saving overwrites it
// unconditionally so the latest randomize or move always wins.
const (
	assignmentSelectQuery = `
SELECT id, side_a_player_ids, side_b_player_ids, team_size, updated_at
FROM team_assignments
WHERE id = 1`

	assignmentUpsertQuery = `
INSERT INTO team_assignments (id, side_a_player_ids, side_b_player_ids, team_size, updated_at)
VALUES (1, :side_a_player_ids, :side_b_player_ids, :team_size, NOW())
ON CONFLICT (id) DO UPDATE SET
	side_a_player_ids = EXCLUDED.side_a_player_ids,
	side_b_player_ids = EXCLUDED.side_b_player_ids,
	team_size = EXCLUDED.team_size,
	updated_at = NOW()`
)

type AssignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Load(ctx context.Context) (assignment.Snapshot, bool, error) {
	var row assignmentTableModel
	if err := r.db.GetContext(ctx, &row, assignmentSelectQuery); err != nil {
		if isNotFound(err) {
			return assignment.Snapshot{}, false, nil
		}
		return assignment.Snapshot{}, false, fmt.Errorf("load team assignment: %w", err)
	}

	snap := assignment.Snapshot{
		SideAPlayerIDs: []string(row.SideAPlayerIDs),
		SideBPlayerIDs: []string(row.SideBPlayerIDs),
		TeamSize:       row.TeamSize,
	}

	return snap, true, nil
}

func (r *AssignmentRepository) Save(ctx context.Context, snap assignment.Snapshot) error {
	row := assignmentTableModel{
		SideAPlayerIDs: snap.SideAPlayerIDs,
		SideBPlayerIDs: snap.SideBPlayerIDs,
		TeamSize:       snap.TeamSize,
	}

	query, args, err := sqlx.Named(assignmentUpsertQuery, row)
	if err != nil {
		return fmt.Errorf("bind team assignment upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("save team assignment: %w", err)
	}

	return nil
}
