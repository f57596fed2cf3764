package memory

import (
	"testing"

	"github.com/pitchside/matchday/internal/domain/assignment"
	"github.com/pitchside/matchday/internal/domain/game"
	"github.com/pitchside/matchday/internal/domain/player"
)

var (
	_ player.Repository     = (*PlayerRepository)(nil)
	_ assignment.Repository = (*AssignmentRepository)(nil)
	_ game.Repository       = (*GameRepository)(nil)
)

func TestPlayerRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewPlayerRepository(nil)

	for _, p := range []player.Player{
		{ID: "pl-1", Name: "Ayu"},
		{ID: "pl-2", Name: "Bima"},
		{ID: "pl-3", Name: "Candra"},
	} {
		if err := repo.Create(t.Context(), p); err != nil {
			t.Fatalf("create player failed: %v", err)
		}
	}

	if err := repo.Delete(t.Context(), "pl-2"); err != nil {
		t.Fatalf("delete player failed: %v", err)
	}

	roster, err := repo.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(roster) != 2 || roster[0].ID != "pl-1" || roster[1].ID != "pl-3" {
		t.Fatalf("unexpected roster order: %+v", roster)
	}
}
