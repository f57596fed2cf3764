package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/domain/user"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchday/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticVerifier struct{}

func (staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if token != "good-token" {
		return user.Principal{}, fmt.Errorf("%w: bad token", usecase.ErrUnauthorized)
	}
	return user.Principal{UserID: "organizer-1"}, nil
}

type sequenceIDGenerator struct {
	next int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("id-%04d", g.next), nil
}

func newTestRouter(t *testing.T, roster []player.Player) http.Handler {
	t.Helper()
	return newTestRouterWithLogger(t, roster, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestRouterWithLogger(t *testing.T, roster []player.Player, logger *slog.Logger) http.Handler {
	t.Helper()

	playerRepo := memory.NewPlayerRepository(roster)
	assignmentRepo := memory.NewAssignmentRepository()
	gameRepo := memory.NewGameRepository(nil)

	idGen := &sequenceIDGenerator{}
	playerService := usecase.NewPlayerService(playerRepo, idGen, nil, logger)
	assignmentService := usecase.NewAssignmentService(playerRepo, assignmentRepo, nil, nil, logger)
	gameService := usecase.NewGameService(gameRepo, idGen, nil, logger)
	leaderboardService := usecase.NewLeaderboardService(gameRepo, nil)
	dashboardService := usecase.NewDashboardService(playerService, assignmentService, gameService, leaderboardService)

	handler := NewHandler(playerService, assignmentService, gameService, leaderboardService, dashboardService, logger)

	return NewRouter(handler, staticVerifier{}, logger, []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec, envelope
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, envelope := doJSON(t, router, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
}

func TestRouterMutationsRequireAuth(t *testing.T) {
	router := newTestRouter(t, nil)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/v1/players", `{"name":"Agus"}`},
		{http.MethodPost, "/v1/teams/randomize", `{"teamSize":7}`},
		{http.MethodPost, "/v1/games", `{"paymentPolicy":"everyone_pays"}`},
		{http.MethodDelete, "/v1/teams", ""},
	}

	for _, tc := range cases {
		rec, _ := doJSON(t, router, tc.method, tc.path, "", tc.body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouterPlayerLifecycle(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/players", "good-token", `{"name":"Agus"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	playerID, _ := created["id"].(string)
	require.NotEmpty(t, playerID)
	assert.Equal(t, "Agus", created["name"])
	assert.Equal(t, false, created["isIn"])

	rec, envelope = doJSON(t, router, http.MethodPatch, "/v1/players/"+playerID+"/attendance", "good-token", `{"isIn":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := envelope["data"].(map[string]any)
	assert.Equal(t, true, updated["isIn"])

	rec, envelope = doJSON(t, router, http.MethodPatch, "/v1/players/"+playerID+"/payment", "good-token", `{"hasPaid":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated = envelope["data"].(map[string]any)
	assert.Equal(t, true, updated["hasPaid"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/players", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list, ok := envelope["data"].([]any)
	require.True(t, ok)
	assert.Len(t, list, 1)

	rec, _ = doJSON(t, router, http.MethodDelete, "/v1/players/"+playerID, "good-token", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodDelete, "/v1/players/"+playerID, "good-token", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterRandomizeSplitsEligiblePlayers(t *testing.T) {
	roster := make([]player.Player, 0, 10)
	for i := 0; i < 10; i++ {
		roster = append(roster, player.Player{
			ID:   fmt.Sprintf("seed-%02d", i),
			Name: fmt.Sprintf("Player %02d", i),
			IsIn: true,
		})
	}
	router := newTestRouter(t, roster)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/teams/randomize", "good-token", `{"teamSize":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	data := envelope["data"].(map[string]any)
	sideA := data["sideA"].([]any)
	sideB := data["sideB"].([]any)
	unassigned := data["unassigned"].([]any)
	assert.Len(t, sideA, 5)
	assert.Len(t, sideB, 5)
	assert.Len(t, unassigned, 0)

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/teams", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data = envelope["data"].(map[string]any)
	assert.Len(t, data["sideA"].([]any), 5)
	assert.Len(t, data["sideB"].([]any), 5)

	rec, envelope = doJSON(t, router, http.MethodDelete, "/v1/teams", "good-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data = envelope["data"].(map[string]any)
	assert.Len(t, data["sideA"].([]any), 0)
	assert.Len(t, data["sideB"].([]any), 0)
	assert.Len(t, data["unassigned"].([]any), 10)
}

func TestRouterRandomizeRejectsBadTeamSize(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/teams/randomize", "good-token", `{"teamSize":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterRecordGameAndLeaderboard(t *testing.T) {
	router := newTestRouter(t, nil)

	body := `{
		"date": "2026-03-14",
		"sideANames": ["Agus", "Bayu"],
		"sideBNames": ["Citra", "Dimas"],
		"sideAScore": 7,
		"sideBScore": 4,
		"attendeeNames": ["Agus", "Bayu", "Citra", "Dimas"],
		"paidNames": ["Agus"],
		"paymentPolicy": "loser_pays"
	}`
	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/games", "good-token", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	data := envelope["data"].(map[string]any)
	assert.Equal(t, "2026-03-14", data["date"])
	assert.Equal(t, true, data["counted"])

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/leaderboard", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	board := envelope["data"].(map[string]any)
	players := board["players"].([]any)
	require.Len(t, players, 4)
	top := players[0].(map[string]any)
	assert.EqualValues(t, 1, top["wins"])

	sides := board["sides"].(map[string]any)
	assert.EqualValues(t, 1, sides["sideAWins"])
	assert.EqualValues(t, 1, sides["totalGames"])
}

func TestRouterRecordGameRejectsUnknownPolicy(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/games", "good-token", `{"sideANames":["A"],"paymentPolicy":"split_evenly"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterDashboardAggregates(t *testing.T) {
	router := newTestRouter(t, memory.SeedRoster())

	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/dashboard", "good-token", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := envelope["data"].(map[string]any)
	require.Contains(t, data, "roster")
	require.Contains(t, data, "teams")
	require.Contains(t, data, "recentGames")
	require.Contains(t, data, "leaderboard")
	assert.NotEmpty(t, data["roster"].([]any))
}
