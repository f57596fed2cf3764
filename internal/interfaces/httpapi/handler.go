package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/pitchside/matchday/internal/usecase"
)

type Handler struct {
	playerService      *usecase.PlayerService
	assignmentService  *usecase.AssignmentService
	gameService        *usecase.GameService
	leaderboardService *usecase.LeaderboardService
	dashboardService   *usecase.DashboardService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	assignmentService *usecase.AssignmentService,
	gameService *usecase.GameService,
	leaderboardService *usecase.LeaderboardService,
	dashboardService *usecase.DashboardService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		playerService:      playerService,
		assignmentService:  assignmentService,
		gameService:        gameService,
		leaderboardService: leaderboardService,
		dashboardService:   dashboardService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// actorID reports the authenticated organizer behind an admin request, for
// the mutation audit logs. Empty on unauthenticated routes.
func (h *Handler) actorID(ctx context.Context) string {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return ""
	}

	return principal.UserID
}

func (h *Handler) decodeRequest(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
