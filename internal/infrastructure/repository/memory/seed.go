package memory

import (
	"time"

	"github.com/pitchside/matchday/internal/domain/game"
	"github.com/pitchside/matchday/internal/domain/player"
)

// SeedRoster returns a small dev roster so the service is usable without a
// database.
func SeedRoster() []player.Player {
	return []player.Player{
		{ID: "pl-ayu", Name: "Ayu", IsIn: true, HasPaid: true},
		{ID: "pl-bima", Name: "Bima", IsIn: true, HasPaid: true},
		{ID: "pl-candra", Name: "Candra", IsIn: true},
		{ID: "pl-dewi", Name: "Dewi", IsIn: true, HasPaid: true},
		{ID: "pl-eko", Name: "Eko", IsIn: true},
		{ID: "pl-farah", Name: "Farah", IsIn: true},
		{ID: "pl-gilang", Name: "Gilang", IsIn: true, HasPaid: true},
		{ID: "pl-hana", Name: "Hana", IsIn: true},
		{ID: "pl-indra", Name: "Indra", IsIn: false},
		{ID: "pl-joko", Name: "Joko", IsIn: false, HasPaid: true},
	}
}

// SeedGames returns a short dev history, newest first.
func SeedGames() []game.Record {
	return []game.Record{
		{
			ID:         "gm-0002",
			Date:       time.Date(2026, 8, 21, 19, 0, 0, 0, time.UTC),
			SideANames: []string{"Ayu", "Bima", "Candra", "Dewi"},
			SideBNames: []string{"Eko", "Farah", "Gilang", "Hana"},
			SideAScore: game.KnownScore(5),
			SideBScore: game.KnownScore(5),
			Policy:     game.EveryonePays,
		},
		{
			ID:         "gm-0001",
			Date:       time.Date(2026, 8, 14, 19, 0, 0, 0, time.UTC),
			SideANames: []string{"Ayu", "Bima", "Eko", "Hana"},
			SideBNames: []string{"Candra", "Dewi", "Farah", "Gilang"},
			SideAScore: game.KnownScore(7),
			SideBScore: game.KnownScore(4),
			Policy:     game.LoserPays,
		},
	}
}
