package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// Public routes cover every read: the roster board is shared with the whole
// group, not just the organizers.
func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/teams", handler.GetTeams)
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
}

// Admin routes mutate shared state and require a verified organizer token.
func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))

	mux.Handle("POST /v1/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PATCH /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.RenamePlayer)))
	mux.Handle("PATCH /v1/players/{playerID}/attendance", RequireAuth(verifier, http.HandlerFunc(handler.SetAttendance)))
	mux.Handle("PATCH /v1/players/{playerID}/payment", RequireAuth(verifier, http.HandlerFunc(handler.SetPayment)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))

	mux.Handle("POST /v1/teams/randomize", RequireAuth(verifier, http.HandlerFunc(handler.RandomizeTeams)))
	mux.Handle("POST /v1/teams/move", RequireAuth(verifier, http.HandlerFunc(handler.MovePlayer)))
	mux.Handle("DELETE /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.ClearTeams)))

	mux.Handle("POST /v1/games", RequireAuth(verifier, http.HandlerFunc(handler.RecordGame)))
}
