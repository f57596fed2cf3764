package httpapi

import "net/http"

type createPlayerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type renamePlayerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type setAttendanceRequest struct {
	IsIn *bool `json:"isIn" validate:"required"`
}

type setPaymentRequest struct {
	HasPaid *bool `json:"hasPaid" validate:"required"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	roster, err := h.playerService.ListRoster(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(roster))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.CreatePlayer(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "player created", "player_id", created.ID, "actor", h.actorID(ctx))
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) RenamePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenamePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req renamePlayerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.RenamePlayer(ctx, playerID, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "rename player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "player renamed", "player_id", playerID, "actor", h.actorID(ctx))
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) SetAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetAttendance")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req setAttendanceRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.SetAttendance(ctx, playerID, *req.IsIn)
	if err != nil {
		h.logger.WarnContext(ctx, "set attendance failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "attendance updated", "player_id", playerID, "is_in", *req.IsIn, "actor", h.actorID(ctx))
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) SetPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPayment")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req setPaymentRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.SetPayment(ctx, playerID, *req.HasPaid)
	if err != nil {
		h.logger.WarnContext(ctx, "set payment failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "payment updated", "player_id", playerID, "has_paid", *req.HasPaid, "actor", h.actorID(ctx))
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "player deleted", "player_id", playerID, "actor", h.actorID(ctx))
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
