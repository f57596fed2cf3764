package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

type recordingPublisher struct {
	events []ChangeEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event ChangeEvent) {
	p.events = append(p.events, event)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPlayerService_CreatePlayer(t *testing.T) {
	repo := memory.NewPlayerRepository(nil)
	publisher := &recordingPublisher{}
	service := NewPlayerService(repo, staticIDGenerator{id: "pl-100"}, publisher, discardLogger())

	now := time.Date(2026, 8, 28, 19, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.CreatePlayer(t.Context(), "  Raka  ")
	if err != nil {
		t.Fatalf("create player failed: %v", err)
	}
	if created.ID != "pl-100" {
		t.Fatalf("expected player id pl-100, got %s", created.ID)
	}
	if created.Name != "Raka" {
		t.Fatalf("expected trimmed name Raka, got %q", created.Name)
	}
	if created.IsIn || created.HasPaid {
		t.Fatalf("new players must start not-in and unpaid, got %+v", created)
	}

	roster, err := service.ListRoster(t.Context())
	if err != nil {
		t.Fatalf("list roster failed: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("expected 1 roster entry, got %d", len(roster))
	}

	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 change event, got %d", len(publisher.events))
	}
	if publisher.events[0].Kind != ChangeRoster {
		t.Fatalf("expected roster change event, got %s", publisher.events[0].Kind)
	}
	if !publisher.events[0].OccurredAt.Equal(now) {
		t.Fatalf("expected event at %v, got %v", now, publisher.events[0].OccurredAt)
	}
}

func TestPlayerService_CreatePlayer_EmptyName(t *testing.T) {
	service := NewPlayerService(memory.NewPlayerRepository(nil), staticIDGenerator{id: "pl-100"}, nil, discardLogger())

	_, err := service.CreatePlayer(t.Context(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_SetAttendanceAndPayment(t *testing.T) {
	repo := memory.NewPlayerRepository([]player.Player{
		{ID: "pl-1", Name: "Ayu"},
	})
	publisher := &recordingPublisher{}
	service := NewPlayerService(repo, staticIDGenerator{id: "unused"}, publisher, discardLogger())

	updated, err := service.SetAttendance(t.Context(), "pl-1", true)
	if err != nil {
		t.Fatalf("set attendance failed: %v", err)
	}
	if !updated.IsIn {
		t.Fatalf("expected player marked in, got %+v", updated)
	}

	updated, err = service.SetPayment(t.Context(), "pl-1", true)
	if err != nil {
		t.Fatalf("set payment failed: %v", err)
	}
	if !updated.HasPaid {
		t.Fatalf("expected player marked paid, got %+v", updated)
	}

	if len(publisher.events) != 2 {
		t.Fatalf("expected 2 change events, got %d", len(publisher.events))
	}
}

func TestPlayerService_RenamePlayer(t *testing.T) {
	repo := memory.NewPlayerRepository([]player.Player{
		{ID: "pl-1", Name: "Ayu", IsIn: true},
	})
	service := NewPlayerService(repo, staticIDGenerator{id: "unused"}, nil, discardLogger())

	renamed, err := service.RenamePlayer(t.Context(), "pl-1", "Ayu Lestari")
	if err != nil {
		t.Fatalf("rename player failed: %v", err)
	}
	if renamed.Name != "Ayu Lestari" {
		t.Fatalf("unexpected name: %q", renamed.Name)
	}
	if !renamed.IsIn {
		t.Fatalf("rename must not touch attendance, got %+v", renamed)
	}
}

func TestPlayerService_MutateUnknownPlayer(t *testing.T) {
	service := NewPlayerService(memory.NewPlayerRepository(nil), staticIDGenerator{id: "unused"}, nil, discardLogger())

	_, err := service.SetAttendance(t.Context(), "pl-missing", true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_DeletePlayer(t *testing.T) {
	repo := memory.NewPlayerRepository(memory.SeedRoster())
	publisher := &recordingPublisher{}
	service := NewPlayerService(repo, staticIDGenerator{id: "unused"}, publisher, discardLogger())

	before, _ := service.ListRoster(t.Context())

	if err := service.DeletePlayer(t.Context(), "pl-ayu"); err != nil {
		t.Fatalf("delete player failed: %v", err)
	}

	after, err := service.ListRoster(t.Context())
	if err != nil {
		t.Fatalf("list roster failed: %v", err)
	}
	if len(after) != len(before)-1 {
		t.Fatalf("expected roster to shrink by one, got %d -> %d", len(before), len(after))
	}

	if err := service.DeletePlayer(t.Context(), "pl-ayu"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
