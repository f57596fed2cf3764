package postgres

import (
	"time"

	"github.com/lib/pq"
)

type assignmentTableModel struct {
	ID             int64          `db:"id"`
	SideAPlayerIDs pq.StringArray `db:"side_a_player_ids"`
	SideBPlayerIDs pq.StringArray `db:"side_b_player_ids"`
	TeamSize       int            `db:"team_size"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
