package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pitchside/matchday/internal/domain/assignment"
	"github.com/pitchside/matchday/internal/domain/player"
)

// TeamView is the hydrated current assignment plus the eligible players on
// neither side.
type TeamView struct {
	SideA      []player.Player
	SideB      []player.Player
	Unassigned []player.Player
	TeamSize   int
}

type AssignmentService struct {
	playerRepo     player.Repository
	assignmentRepo assignment.Repository
	shuffler       assignment.Shuffler
	publisher      ChangePublisher
	logger         *slog.Logger

	now func() time.Time
}

func NewAssignmentService(
	playerRepo player.Repository,
	assignmentRepo assignment.Repository,
	shuffler assignment.Shuffler,
	publisher ChangePublisher,
	logger *slog.Logger,
) *AssignmentService {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if shuffler == nil {
		shuffler = assignment.NewShuffler()
	}

	return &AssignmentService{
		playerRepo:     playerRepo,
		assignmentRepo: assignmentRepo,
		shuffler:       shuffler,
		publisher:      publisher,
		logger:         logger,
		now:            time.Now,
	}
}

// Get loads the persisted assignment snapshot and resolves it against the
// live roster. Ids of deleted players drop out silently.
func (s *AssignmentService) Get(ctx context.Context) (TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.Get")
	defer span.End()

	roster, err := s.playerRepo.List(ctx)
	if err != nil {
		return TeamView{}, fmt.Errorf("list roster: %w", err)
	}

	snap, exists, err := s.assignmentRepo.Load(ctx)
	if err != nil {
		return TeamView{}, fmt.Errorf("load assignment: %w", err)
	}

	current := assignment.Assignment{SideA: []player.Player{}, SideB: []player.Player{}}
	if exists {
		current = assignment.Hydrate(snap, roster)
	}

	return s.view(current, roster), nil
}

// Randomize reshuffles the eligible pool into two sides and persists the
// result. The write is last-writer-wins over the single shared record.
func (s *AssignmentService) Randomize(ctx context.Context, teamSize int) (TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.Randomize")
	defer span.End()

	if teamSize <= 0 {
		return TeamView{}, fmt.Errorf("%w: team size must be positive", ErrInvalidInput)
	}

	roster, err := s.playerRepo.List(ctx)
	if err != nil {
		return TeamView{}, fmt.Errorf("list roster: %w", err)
	}

	next := assignment.Split(player.Eligible(roster), teamSize, s.shuffler)
	if err := s.assignmentRepo.Save(ctx, next.Snapshot()); err != nil {
		return TeamView{}, fmt.Errorf("save assignment: %w", err)
	}

	s.logger.InfoContext(ctx, "teams randomized",
		"team_size", teamSize,
		"side_a", len(next.SideA),
		"side_b", len(next.SideB),
	)
	s.publisher.Publish(ctx, ChangeEvent{Kind: ChangeAssignment, OccurredAt: s.now().UTC()})

	return s.view(next, roster), nil
}

// Move places one player on the requested side and persists the result.
func (s *AssignmentService) Move(ctx context.Context, playerID string, rawSide string) (TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.Move")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return TeamView{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	side, ok := assignment.ParseSide(rawSide)
	if !ok {
		return TeamView{}, fmt.Errorf("%w: unknown side %q", ErrInvalidInput, rawSide)
	}

	target, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return TeamView{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return TeamView{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	roster, err := s.playerRepo.List(ctx)
	if err != nil {
		return TeamView{}, fmt.Errorf("list roster: %w", err)
	}

	snap, _, err := s.assignmentRepo.Load(ctx)
	if err != nil {
		return TeamView{}, fmt.Errorf("load assignment: %w", err)
	}

	next := assignment.Move(assignment.Hydrate(snap, roster), target, side)
	if err := s.assignmentRepo.Save(ctx, next.Snapshot()); err != nil {
		return TeamView{}, fmt.Errorf("save assignment: %w", err)
	}

	s.publisher.Publish(ctx, ChangeEvent{Kind: ChangeAssignment, OccurredAt: s.now().UTC()})

	return s.view(next, roster), nil
}

// Clear empties both sides.
func (s *AssignmentService) Clear(ctx context.Context) (TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.Clear")
	defer span.End()

	roster, err := s.playerRepo.List(ctx)
	if err != nil {
		return TeamView{}, fmt.Errorf("list roster: %w", err)
	}

	snap, _, err := s.assignmentRepo.Load(ctx)
	if err != nil {
		return TeamView{}, fmt.Errorf("load assignment: %w", err)
	}

	next := assignment.Clear(assignment.Hydrate(snap, roster))
	if err := s.assignmentRepo.Save(ctx, next.Snapshot()); err != nil {
		return TeamView{}, fmt.Errorf("save assignment: %w", err)
	}

	s.publisher.Publish(ctx, ChangeEvent{Kind: ChangeAssignment, OccurredAt: s.now().UTC()})

	return s.view(next, roster), nil
}

func (s *AssignmentService) view(a assignment.Assignment, roster []player.Player) TeamView {
	return TeamView{
		SideA:      a.SideA,
		SideB:      a.SideB,
		Unassigned: assignment.Unassigned(a, player.Eligible(roster)),
		TeamSize:   a.TeamSize,
	}
}
