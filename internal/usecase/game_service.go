package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pitchside/matchday/internal/domain/game"
	id "github.com/pitchside/matchday/internal/platform/id"
)

// RecordGameInput carries one session result as reported by an
// administrator. Nil scores mean "not tracked"; records with neither scores
// nor a winner are stored but never counted by the aggregator.
type RecordGameInput struct {
	Date          time.Time
	SideANames    []string
	SideBNames    []string
	SideAScore    *int
	SideBScore    *int
	AttendeeNames []string
	PaidNames     []string
	Policy        string
	Winner        string
}

type GameService struct {
	gameRepo  game.Repository
	idGen     id.Generator
	publisher ChangePublisher
	logger    *slog.Logger

	now func() time.Time
}

func NewGameService(gameRepo game.Repository, idGen id.Generator, publisher ChangePublisher, logger *slog.Logger) *GameService {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = NopPublisher{}
	}

	return &GameService{
		gameRepo:  gameRepo,
		idGen:     idGen,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *GameService) RecordGame(ctx context.Context, input RecordGameInput) (game.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.RecordGame")
	defer span.End()

	policy, ok := game.ParsePaymentPolicy(input.Policy)
	if !ok {
		return game.Record{}, fmt.Errorf("%w: unknown payment policy %q", ErrInvalidInput, input.Policy)
	}
	winner, ok := game.ParseWinner(input.Winner)
	if !ok {
		return game.Record{}, fmt.Errorf("%w: unknown winner %q", ErrInvalidInput, input.Winner)
	}

	recordID, err := s.idGen.NewID()
	if err != nil {
		return game.Record{}, fmt.Errorf("generate record id: %w", err)
	}

	record := game.Record{
		ID:            recordID,
		Date:          input.Date,
		SideANames:    dropEmptyNames(input.SideANames),
		SideBNames:    dropEmptyNames(input.SideBNames),
		SideAScore:    scoreFromPtr(input.SideAScore),
		SideBScore:    scoreFromPtr(input.SideBScore),
		AttendeeNames: dropEmptyNames(input.AttendeeNames),
		PaidNames:     dropEmptyNames(input.PaidNames),
		Policy:        policy,
		Winner:        winner,
	}
	if record.Date.IsZero() {
		record.Date = s.now().UTC()
	}
	if err := record.Validate(); err != nil {
		return game.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.gameRepo.Create(ctx, record); err != nil {
		return game.Record{}, fmt.Errorf("create game record: %w", err)
	}

	_, counted := record.Outcome()
	s.logger.InfoContext(ctx, "game recorded",
		"record_id", record.ID,
		"date", record.Date.Format(time.DateOnly),
		"counted", counted,
	)
	s.publisher.Publish(ctx, ChangeEvent{Kind: ChangeGame, OccurredAt: s.now().UTC()})

	return record, nil
}

func (s *GameService) ListGames(ctx context.Context) ([]game.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames")
	defer span.End()

	records, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list game records: %w", err)
	}

	return records, nil
}

func (s *GameService) ListRecentGames(ctx context.Context, limit int) ([]game.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListRecentGames")
	defer span.End()

	if limit <= 0 {
		return []game.Record{}, nil
	}

	records, err := s.gameRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent game records: %w", err)
	}

	return records, nil
}

func scoreFromPtr(value *int) game.Score {
	if value == nil {
		return game.UnknownScore()
	}
	return game.KnownScore(*value)
}

func dropEmptyNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		out = append(out, name)
	}

	return out
}
