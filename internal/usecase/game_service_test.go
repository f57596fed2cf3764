package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pitchside/matchday/internal/domain/game"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
)

func TestGameService_RecordGame(t *testing.T) {
	repo := memory.NewGameRepository(nil)
	publisher := &recordingPublisher{}
	service := NewGameService(repo, staticIDGenerator{id: "gm-100"}, publisher, discardLogger())

	scoreA, scoreB := 7, 4
	record, err := service.RecordGame(t.Context(), RecordGameInput{
		Date:          time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		SideANames:    []string{"Ayu", "Bima", ""},
		SideBNames:    []string{"Candra", "Dewi"},
		SideAScore:    &scoreA,
		SideBScore:    &scoreB,
		AttendeeNames: []string{"Ayu", "Bima", "Candra", "Dewi"},
		PaidNames:     []string{"Ayu"},
		Policy:        string(game.LoserPays),
	})
	if err != nil {
		t.Fatalf("record game failed: %v", err)
	}

	if record.ID != "gm-100" {
		t.Fatalf("expected record id gm-100, got %s", record.ID)
	}
	if len(record.SideANames) != 2 {
		t.Fatalf("expected empty names dropped, got %v", record.SideANames)
	}

	winner, counted := record.Outcome()
	if !counted || winner != game.WinnerSideA {
		t.Fatalf("expected counted side A win, got winner=%s counted=%t", winner, counted)
	}

	stored, err := service.ListGames(t.Context())
	if err != nil {
		t.Fatalf("list games failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(stored))
	}

	if len(publisher.events) != 1 || publisher.events[0].Kind != ChangeGame {
		t.Fatalf("expected one game change event, got %+v", publisher.events)
	}
}

func TestGameService_RecordGame_DefaultsDate(t *testing.T) {
	service := NewGameService(memory.NewGameRepository(nil), staticIDGenerator{id: "gm-100"}, nil, discardLogger())

	now := time.Date(2026, 8, 28, 19, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	record, err := service.RecordGame(t.Context(), RecordGameInput{
		SideANames: []string{"Ayu"},
		SideBNames: []string{"Bima"},
		Policy:     string(game.EveryonePays),
	})
	if err != nil {
		t.Fatalf("record game failed: %v", err)
	}
	if !record.Date.Equal(now) {
		t.Fatalf("expected date defaulted to %v, got %v", now, record.Date)
	}

	// No scores and no designated winner: stored but never counted.
	if _, counted := record.Outcome(); counted {
		t.Fatalf("expected record without outcome to not count")
	}
}

func TestGameService_RecordGame_ExplicitWinnerWithoutScores(t *testing.T) {
	service := NewGameService(memory.NewGameRepository(nil), staticIDGenerator{id: "gm-100"}, nil, discardLogger())

	record, err := service.RecordGame(t.Context(), RecordGameInput{
		Date:       time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		SideANames: []string{"Ayu"},
		SideBNames: []string{"Bima"},
		Policy:     string(game.EveryonePays),
		Winner:     string(game.WinnerSideB),
	})
	if err != nil {
		t.Fatalf("record game failed: %v", err)
	}

	winner, counted := record.Outcome()
	if !counted || winner != game.WinnerSideB {
		t.Fatalf("expected counted side B win, got winner=%s counted=%t", winner, counted)
	}
}

func TestGameService_RecordGame_InvalidInput(t *testing.T) {
	service := NewGameService(memory.NewGameRepository(nil), staticIDGenerator{id: "gm-100"}, nil, discardLogger())

	cases := map[string]RecordGameInput{
		"unknown policy": {
			SideANames: []string{"Ayu"},
			Policy:     "winner_pays",
		},
		"unknown winner": {
			SideANames: []string{"Ayu"},
			Policy:     string(game.EveryonePays),
			Winner:     "sideC",
		},
		"no roster names": {
			Policy: string(game.EveryonePays),
		},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := service.RecordGame(t.Context(), input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestGameService_ListRecentGames(t *testing.T) {
	service := NewGameService(memory.NewGameRepository(memory.SeedGames()), staticIDGenerator{id: "gm-100"}, nil, discardLogger())

	recent, err := service.ListRecentGames(t.Context(), 1)
	if err != nil {
		t.Fatalf("list recent failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent record, got %d", len(recent))
	}
	if recent[0].ID != "gm-0002" {
		t.Fatalf("expected newest record first, got %s", recent[0].ID)
	}

	none, err := service.ListRecentGames(t.Context(), 0)
	if err != nil {
		t.Fatalf("list recent with zero limit failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty slice for zero limit, got %d", len(none))
	}
}
