package httpapi

import (
	"time"

	"github.com/pitchside/matchday/internal/domain/game"
	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/domain/stats"
	"github.com/pitchside/matchday/internal/usecase"
)

type playerDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsIn    bool   `json:"isIn"`
	HasPaid bool   `json:"hasPaid"`
}

type teamViewDTO struct {
	SideA      []playerDTO `json:"sideA"`
	SideB      []playerDTO `json:"sideB"`
	Unassigned []playerDTO `json:"unassigned"`
	TeamSize   int         `json:"teamSize"`
}

type gameDTO struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	SideANames    []string `json:"sideANames"`
	SideBNames    []string `json:"sideBNames"`
	SideAScore    *int     `json:"sideAScore"`
	SideBScore    *int     `json:"sideBScore"`
	AttendeeNames []string `json:"attendeeNames"`
	PaidNames     []string `json:"paidNames"`
	Policy        string   `json:"paymentPolicy"`
	Winner        string   `json:"winner,omitempty"`
	Counted       bool     `json:"counted"`
}

type standingDTO struct {
	Name        string  `json:"name"`
	Wins        int     `json:"wins"`
	GamesPlayed int     `json:"gamesPlayed"`
	WinRate     float64 `json:"winRate"`
}

type sideStatsDTO struct {
	SideAWins  int `json:"sideAWins"`
	SideBWins  int `json:"sideBWins"`
	Draws      int `json:"draws"`
	TotalGames int `json:"totalGames"`
}

type leaderboardDTO struct {
	Players []standingDTO `json:"players"`
	Sides   sideStatsDTO  `json:"sides"`
}

type dashboardDTO struct {
	Roster      []playerDTO    `json:"roster"`
	Teams       teamViewDTO    `json:"teams"`
	RecentGames []gameDTO      `json:"recentGames"`
	Leaderboard leaderboardDTO `json:"leaderboard"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:      v.ID,
		Name:    v.Name,
		IsIn:    v.IsIn,
		HasPaid: v.HasPaid,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func teamViewToDTO(v usecase.TeamView) teamViewDTO {
	return teamViewDTO{
		SideA:      playersToDTO(v.SideA),
		SideB:      playersToDTO(v.SideB),
		Unassigned: playersToDTO(v.Unassigned),
		TeamSize:   v.TeamSize,
	}
}

func gameToDTO(v game.Record) gameDTO {
	_, counted := v.Outcome()

	return gameDTO{
		ID:            v.ID,
		Date:          v.Date.UTC().Format(time.DateOnly),
		SideANames:    emptyIfNil(v.SideANames),
		SideBNames:    emptyIfNil(v.SideBNames),
		SideAScore:    scoreToPtr(v.SideAScore),
		SideBScore:    scoreToPtr(v.SideBScore),
		AttendeeNames: emptyIfNil(v.AttendeeNames),
		PaidNames:     emptyIfNil(v.PaidNames),
		Policy:        string(v.Policy),
		Winner:        string(v.Winner),
		Counted:       counted,
	}
}

func gamesToDTO(items []game.Record) []gameDTO {
	out := make([]gameDTO, 0, len(items))
	for _, item := range items {
		out = append(out, gameToDTO(item))
	}
	return out
}

func leaderboardToDTO(v usecase.Leaderboard) leaderboardDTO {
	players := make([]standingDTO, 0, len(v.Players))
	for _, standing := range v.Players {
		players = append(players, standingToDTO(standing))
	}

	return leaderboardDTO{
		Players: players,
		Sides: sideStatsDTO{
			SideAWins:  v.Sides.SideAWins,
			SideBWins:  v.Sides.SideBWins,
			Draws:      v.Sides.Draws,
			TotalGames: v.Sides.TotalGames,
		},
	}
}

func standingToDTO(v stats.PlayerStanding) standingDTO {
	return standingDTO{
		Name:        v.Name,
		Wins:        v.Wins,
		GamesPlayed: v.GamesPlayed,
		WinRate:     v.WinRate,
	}
}

func scoreToPtr(v game.Score) *int {
	value, ok := v.Value()
	if !ok {
		return nil
	}
	return &value
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
