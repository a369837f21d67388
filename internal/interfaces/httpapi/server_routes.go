package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/slate", handler.GetSlate)
	mux.HandleFunc("GET /v1/session", handler.GetSession)

	mux.HandleFunc("POST /v1/picks", handler.MakePick)
	mux.HandleFunc("POST /v1/events/{eventID}/results", handler.SimulateEventResults)
	mux.HandleFunc("POST /v1/events/{eventID}/reveal", handler.RevealEventResults)

	mux.HandleFunc("PUT /v1/fantasy/squad", handler.UpdateSquad)
	mux.HandleFunc("POST /v1/fantasy/simulate-week", handler.SimulateWeek)
	mux.HandleFunc("POST /v1/fantasy/points", handler.CalculateFantasyPoints)

	mux.HandleFunc("GET /v1/leaderboards", handler.GetLeaderboards)
	mux.HandleFunc("PUT /v1/leaderboards/filters", handler.UpdateLeaderboardFilters)
	mux.HandleFunc("PUT /v1/profile/country", handler.UpdateCountry)

	mux.HandleFunc("POST /v1/demo/toggle", handler.ToggleDemoMode)
	mux.HandleFunc("POST /v1/demo/reset", handler.ResetDemoData)
}
