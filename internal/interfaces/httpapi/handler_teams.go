package httpapi

import "net/http"

type randomizeTeamsRequest struct {
	TeamSize int `json:"teamSize" validate:"required,min=1"`
}

type movePlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Side     string `json:"side" validate:"required,oneof=sideA sideB"`
}

func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeams")
	defer span.End()

	view, err := h.assignmentService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamViewToDTO(view))
}

func (h *Handler) RandomizeTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RandomizeTeams")
	defer span.End()

	var req randomizeTeamsRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.assignmentService.Randomize(ctx, req.TeamSize)
	if err != nil {
		h.logger.WarnContext(ctx, "randomize teams failed", "team_size", req.TeamSize, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "teams randomized", "team_size", req.TeamSize, "actor", h.actorID(ctx))
	writeSuccess(ctx, w, http.StatusOK, teamViewToDTO(view))
}

func (h *Handler) MovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MovePlayer")
	defer span.End()

	var req movePlayerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.assignmentService.Move(ctx, req.PlayerID, req.Side)
	if err != nil {
		h.logger.WarnContext(ctx, "move player failed", "player_id", req.PlayerID, "side", req.Side, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "player moved", "player_id", req.PlayerID, "side", req.Side, "actor", h.actorID(ctx))
	writeSuccess(ctx, w, http.StatusOK, teamViewToDTO(view))
}

func (h *Handler) ClearTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearTeams")
	defer span.End()

	view, err := h.assignmentService.Clear(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "clear teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "teams cleared", "actor", h.actorID(ctx))
	writeSuccess(ctx, w, http.StatusOK, teamViewToDTO(view))
}
