package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pitchside/matchday/internal/usecase"
)

type recordGameRequest struct {
	Date          string   `json:"date"`
	SideANames    []string `json:"sideANames" validate:"dive,required"`
	SideBNames    []string `json:"sideBNames" validate:"dive,required"`
	SideAScore    *int     `json:"sideAScore" validate:"omitempty,min=0"`
	SideBScore    *int     `json:"sideBScore" validate:"omitempty,min=0"`
	AttendeeNames []string `json:"attendeeNames" validate:"dive,required"`
	PaidNames     []string `json:"paidNames" validate:"dive,required"`
	Policy        string   `json:"paymentPolicy" validate:"required,oneof=everyone_pays loser_pays"`
	Winner        string   `json:"winner" validate:"omitempty,oneof=sideA sideB draw"`
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	records, err := h.gameService.ListGames(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(records))
}

func (h *Handler) RecordGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordGame")
	defer span.End()

	var req recordGameRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var date time.Time
	if raw := strings.TrimSpace(req.Date); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput))
			return
		}
		date = parsed
	}

	record, err := h.gameService.RecordGame(ctx, usecase.RecordGameInput{
		Date:          date,
		SideANames:    req.SideANames,
		SideBNames:    req.SideBNames,
		SideAScore:    req.SideAScore,
		SideBScore:    req.SideBScore,
		AttendeeNames: req.AttendeeNames,
		PaidNames:     req.PaidNames,
		Policy:        req.Policy,
		Winner:        req.Winner,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record game failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.leaderboardService.Invalidate(ctx)

	h.logger.InfoContext(ctx, "game recorded", "game_id", record.ID, "actor", h.actorID(ctx))
	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(record))
}
