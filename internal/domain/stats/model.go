package stats

// PlayerStanding is one leaderboard row, derived from game history and never
// persisted. Players are joined by name snapshot: two identities sharing a
// name are indistinguishable here.
type PlayerStanding struct {
	Name        string
	Wins        int
	GamesPlayed int
	WinRate     float64
}

// SideStats aggregates outcomes across all counted games.
type SideStats struct {
	SideAWins  int
	SideBWins  int
	Draws      int
	TotalGames int
}
