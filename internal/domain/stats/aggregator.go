package stats

import (
	"sort"

	"github.com/pitchside/matchday/internal/domain/game"
)

type tally struct {
	standing PlayerStanding
	// firstSeen pins players with fully equal stats to the order in which
	// the history first mentioned them, keeping ranking independent of map
	// iteration order.
	firstSeen int
}

// BuildLeaderboard folds the game history into a ranked leaderboard and
// side-level aggregates. Records without a countable outcome contribute
// nothing. Ranking is wins desc, then win rate desc, then games played desc,
// then first-encounter order.
func BuildLeaderboard(records []game.Record) ([]PlayerStanding, SideStats) {
	byName := make(map[string]*tally)
	order := 0
	var sides SideStats

	touch := func(name string) *tally {
		if t, ok := byName[name]; ok {
			return t
		}
		t := &tally{
			standing:  PlayerStanding{Name: name},
			firstSeen: order,
		}
		order++
		byName[name] = t
		return t
	}

	for _, record := range records {
		winner, counted := record.Outcome()
		if !counted {
			continue
		}

		switch winner {
		case game.WinnerSideA:
			sides.SideAWins++
		case game.WinnerSideB:
			sides.SideBWins++
		case game.WinnerDraw:
			sides.Draws++
		}

		for _, name := range record.SideANames {
			t := touch(name)
			t.standing.GamesPlayed++
			if winner == game.WinnerSideA {
				t.standing.Wins++
			}
		}
		for _, name := range record.SideBNames {
			t := touch(name)
			t.standing.GamesPlayed++
			if winner == game.WinnerSideB {
				t.standing.Wins++
			}
		}
	}
	sides.TotalGames = sides.SideAWins + sides.SideBWins + sides.Draws

	ranked := make([]*tally, 0, len(byName))
	for _, t := range byName {
		if t.standing.GamesPlayed > 0 {
			t.standing.WinRate = float64(t.standing.Wins) / float64(t.standing.GamesPlayed)
		}
		ranked = append(ranked, t)
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i].standing, ranked[j].standing
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		if a.GamesPlayed != b.GamesPlayed {
			return a.GamesPlayed > b.GamesPlayed
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})

	out := make([]PlayerStanding, 0, len(ranked))
	for _, t := range ranked {
		out = append(out, t.standing)
	}

	return out, sides
}
