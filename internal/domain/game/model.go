package game

import (
	"fmt"
	"time"
)

// Winner designates the outcome of a recorded game.
type Winner string

const (
	WinnerSideA Winner = "sideA"
	WinnerSideB Winner = "sideB"
	WinnerDraw  Winner = "draw"
	WinnerNone  Winner = ""
)

func ParseWinner(raw string) (Winner, bool) {
	switch Winner(raw) {
	case WinnerSideA, WinnerSideB, WinnerDraw, WinnerNone:
		return Winner(raw), true
	default:
		return WinnerNone, false
	}
}

// PaymentPolicy describes how the session's cost is split. Stored with the
// record, never computed upon.
type PaymentPolicy string

const (
	EveryonePays PaymentPolicy = "everyone_pays"
	LoserPays    PaymentPolicy = "loser_pays"
)

func ParsePaymentPolicy(raw string) (PaymentPolicy, bool) {
	switch PaymentPolicy(raw) {
	case EveryonePays, LoserPays:
		return PaymentPolicy(raw), true
	default:
		return "", false
	}
}

// Score is either a known integer or absent. Absence routes outcome
// resolution through the explicit winner designator.
type Score struct {
	value int
	known bool
}

func KnownScore(value int) Score {
	return Score{value: value, known: true}
}

func UnknownScore() Score {
	return Score{}
}

func (s Score) Value() (int, bool) {
	return s.value, s.known
}

func (s Score) Known() bool {
	return s.known
}

// Record is one immutable historical session entry. Team rosters are name
// snapshots rather than live id references so history survives player
// deletion.
type Record struct {
	ID            string
	Date          time.Time
	SideANames    []string
	SideBNames    []string
	SideAScore    Score
	SideBScore    Score
	AttendeeNames []string
	PaidNames     []string
	Policy        PaymentPolicy
	Winner        Winner
}

func (r Record) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("game record date is required")
	}
	if len(r.SideANames) == 0 && len(r.SideBNames) == 0 {
		return fmt.Errorf("game record needs at least one roster name")
	}
	if _, ok := ParsePaymentPolicy(string(r.Policy)); !ok {
		return fmt.Errorf("invalid payment policy: %s", r.Policy)
	}

	return nil
}

// Outcome resolves the record's result. Score comparison wins over the
// explicit designator; a record with neither does not count toward any
// statistics and reports counted=false.
func (r Record) Outcome() (winner Winner, counted bool) {
	scoreA, okA := r.SideAScore.Value()
	scoreB, okB := r.SideBScore.Value()
	if okA && okB {
		switch {
		case scoreA > scoreB:
			return WinnerSideA, true
		case scoreB > scoreA:
			return WinnerSideB, true
		default:
			return WinnerDraw, true
		}
	}

	if r.Winner != WinnerNone {
		return r.Winner, true
	}

	return WinnerNone, false
}
