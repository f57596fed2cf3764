package usecase

import (
	"context"
	"fmt"

	"github.com/pitchside/matchday/internal/domain/game"
	"github.com/pitchside/matchday/internal/domain/stats"
	"github.com/pitchside/matchday/internal/platform/cache"
)

const leaderboardCacheKey = "leaderboard"

// Leaderboard pairs the ranked players with side-level aggregates, both
// derived wholesale from game history on each request.
type Leaderboard struct {
	Players []stats.PlayerStanding
	Sides   stats.SideStats
}

type LeaderboardService struct {
	gameRepo game.Repository
	store    *cache.Store
}

// NewLeaderboardService builds the service. A nil store disables caching.
func NewLeaderboardService(gameRepo game.Repository, store *cache.Store) *LeaderboardService {
	return &LeaderboardService{
		gameRepo: gameRepo,
		store:    store,
	}
}

func (s *LeaderboardService) Get(ctx context.Context) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Get")
	defer span.End()

	if s.store == nil {
		return s.compute(ctx)
	}

	value, err := s.store.GetOrLoad(ctx, leaderboardCacheKey, func(ctx context.Context) (any, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return Leaderboard{}, err
	}

	board, ok := value.(Leaderboard)
	if !ok {
		return Leaderboard{}, fmt.Errorf("unexpected leaderboard cache entry type %T", value)
	}

	return board, nil
}

// Invalidate drops the cached leaderboard. Called after a new game record
// lands so the next read recomputes.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.store == nil {
		return
	}
	s.store.Delete(ctx, leaderboardCacheKey)
}

func (s *LeaderboardService) compute(ctx context.Context) (Leaderboard, error) {
	records, err := s.gameRepo.List(ctx)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("list game records: %w", err)
	}

	players, sides := stats.BuildLeaderboard(records)

	return Leaderboard{Players: players, Sides: sides}, nil
}
