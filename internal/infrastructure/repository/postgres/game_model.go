package postgres

import (
	"time"

	"github.com/lib/pq"
	"github.com/pitchside/matchday/internal/domain/game"
)

type gameTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	PlayedOn      time.Time      `db:"played_on"`
	SideANames    pq.StringArray `db:"side_a_names"`
	SideBNames    pq.StringArray `db:"side_b_names"`
	SideAScore    *int64         `db:"side_a_score"`
	SideBScore    *int64         `db:"side_b_score"`
	AttendeeNames pq.StringArray `db:"attendee_names"`
	PaidNames     pq.StringArray `db:"paid_names"`
	PaymentPolicy string         `db:"payment_policy"`
	Winner        string         `db:"winner"`
	CreatedAt     time.Time      `db:"created_at"`
}

func gameRowFromRecord(rec game.Record) gameTableModel {
	return gameTableModel{
		PublicID:      rec.ID,
		PlayedOn:      rec.Date,
		SideANames:    rec.SideANames,
		SideBNames:    rec.SideBNames,
		SideAScore:    scoreToColumn(rec.SideAScore),
		SideBScore:    scoreToColumn(rec.SideBScore),
		AttendeeNames: rec.AttendeeNames,
		PaidNames:     rec.PaidNames,
		PaymentPolicy: string(rec.Policy),
		Winner:        string(rec.Winner),
	}
}

func gameRecordFromRow(row gameTableModel) game.Record {
	return game.Record{
		ID:            row.PublicID,
		Date:          row.PlayedOn,
		SideANames:    []string(row.SideANames),
		SideBNames:    []string(row.SideBNames),
		SideAScore:    scoreFromColumn(row.SideAScore),
		SideBScore:    scoreFromColumn(row.SideBScore),
		AttendeeNames: []string(row.AttendeeNames),
		PaidNames:     []string(row.PaidNames),
		Policy:        game.PaymentPolicy(row.PaymentPolicy),
		Winner:        game.Winner(row.Winner),
	}
}

func scoreToColumn(score game.Score) *int64 {
	v, ok := score.Value()
	if !ok {
		return nil
	}
	value := int64(v)
	return &value
}

func scoreFromColumn(column *int64) game.Score {
	if column == nil {
		return game.UnknownScore()
	}
	return game.KnownScore(int(*column))
}
