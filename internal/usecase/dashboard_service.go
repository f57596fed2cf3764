package usecase

import (
	"context"
	"fmt"

	"github.com/pitchside/matchday/internal/domain/game"
	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/sourcegraph/conc/pool"
)

const dashboardRecentGames = 5

// Dashboard is the admin landing view: roster with attendance/payment
// state, the live team split, recent history and the leaderboard, loaded in
// one round trip.
type Dashboard struct {
	Roster      []player.Player
	Teams       TeamView
	RecentGames []game.Record
	Leaderboard Leaderboard
}

type DashboardService struct {
	playerService      *PlayerService
	assignmentService  *AssignmentService
	gameService        *GameService
	leaderboardService *LeaderboardService
}

func NewDashboardService(
	playerService *PlayerService,
	assignmentService *AssignmentService,
	gameService *GameService,
	leaderboardService *LeaderboardService,
) *DashboardService {
	return &DashboardService{
		playerService:      playerService,
		assignmentService:  assignmentService,
		gameService:        gameService,
		leaderboardService: leaderboardService,
	}
}

func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	var out Dashboard
	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		roster, err := s.playerService.ListRoster(ctx)
		if err != nil {
			return fmt.Errorf("dashboard roster: %w", err)
		}
		out.Roster = roster
		return nil
	})
	p.Go(func(ctx context.Context) error {
		teams, err := s.assignmentService.Get(ctx)
		if err != nil {
			return fmt.Errorf("dashboard teams: %w", err)
		}
		out.Teams = teams
		return nil
	})
	p.Go(func(ctx context.Context) error {
		recent, err := s.gameService.ListRecentGames(ctx, dashboardRecentGames)
		if err != nil {
			return fmt.Errorf("dashboard recent games: %w", err)
		}
		out.RecentGames = recent
		return nil
	})
	p.Go(func(ctx context.Context) error {
		board, err := s.leaderboardService.Get(ctx)
		if err != nil {
			return fmt.Errorf("dashboard leaderboard: %w", err)
		}
		out.Leaderboard = board
		return nil
	})

	if err := p.Wait(); err != nil {
		return Dashboard{}, err
	}

	return out, nil
}
