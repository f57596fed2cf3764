package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pitchside/matchday/internal/domain/player"
	id "github.com/pitchside/matchday/internal/platform/id"
)

type PlayerService struct {
	playerRepo player.Repository
	idGen      id.Generator
	publisher  ChangePublisher
	logger     *slog.Logger

	now func() time.Time
}

func NewPlayerService(playerRepo player.Repository, idGen id.Generator, publisher ChangePublisher, logger *slog.Logger) *PlayerService {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = NopPublisher{}
	}

	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PlayerService) ListRoster(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListRoster")
	defer span.End()

	roster, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	return roster, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	created := player.Player{
		ID:   playerID,
		Name: name,
	}
	if err := created.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Create(ctx, created); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", created.ID, "name", created.Name)
	s.publisher.Publish(ctx, ChangeEvent{Kind: ChangeRoster, OccurredAt: s.now().UTC()})

	return created, nil
}

func (s *PlayerService) RenamePlayer(ctx context.Context, playerID, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RenamePlayer")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	return s.mutatePlayer(ctx, playerID, func(p *player.Player) {
		p.Name = name
	})
}

func (s *PlayerService) SetAttendance(ctx context.Context, playerID string, isIn bool) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SetAttendance")
	defer span.End()

	return s.mutatePlayer(ctx, playerID, func(p *player.Player) {
		p.IsIn = isIn
	})
}

func (s *PlayerService) SetPayment(ctx context.Context, playerID string, hasPaid bool) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SetPayment")
	defer span.End()

	return s.mutatePlayer(ctx, playerID, func(p *player.Player) {
		p.HasPaid = hasPaid
	})
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID)
	s.publisher.Publish(ctx, ChangeEvent{Kind: ChangeRoster, OccurredAt: s.now().UTC()})

	return nil
}

func (s *PlayerService) mutatePlayer(ctx context.Context, playerID string, apply func(*player.Player)) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	current, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	apply(&current)
	if err := current.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Update(ctx, current); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	s.publisher.Publish(ctx, ChangeEvent{Kind: ChangeRoster, OccurredAt: s.now().UTC()})

	return current, nil
}
