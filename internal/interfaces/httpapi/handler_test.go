package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/wingfantasy/wingfantasy/internal/domain/squad"
	"github.com/wingfantasy/wingfantasy/internal/infrastructure/repository/memory"
	"github.com/wingfantasy/wingfantasy/internal/infrastructure/store"
	"github.com/wingfantasy/wingfantasy/internal/platform/id"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
	"github.com/wingfantasy/wingfantasy/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	catalog, err := memory.SeedCatalog()
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	events := memory.NewEventRepository(memory.SeedEvents(time.Now()))
	snapshots := store.NewSnapshots(store.NewMemoryStore())
	ids := id.NewRandomGenerator()
	logger := logging.NewNop()

	sessions := usecase.NewSessionService(events, snapshots, ids, logger)
	state, user, boards, err := sessions.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	handler := NewHandler(HandlerDeps{
		State:      state,
		User:       user,
		Boards:     boards,
		Events:     events,
		Sessions:   sessions,
		Picks:      usecase.NewPicksService(events, catalog, sessions, logger),
		Squads:     usecase.NewSquadService(catalog, squad.DefaultRules(), sessions, logger),
		Sims:       usecase.NewSimulationService(catalog, sessions, logger),
		Scores:     usecase.NewScoringService(catalog, sessions, logger),
		Demos:      usecase.NewDemoService(ids, sessions, logger),
		BoardQuery: usecase.NewLeaderboardQuery(),
	})

	return NewRouter(handler, nil, []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal %s %s response: %v", method, path, err)
	}
	return rec, envelope
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", envelope)
	}
}

func TestGetSlate(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/slate", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	data, _ := envelope["data"].(map[string]any)
	weekID, _ := data["weekId"].(string)
	if !strings.HasPrefix(weekID, "week_") {
		t.Fatalf("unexpected weekId: %q", weekID)
	}
	matches, _ := data["matches"].([]any)
	if len(matches) != 1 {
		t.Fatalf("expected one slate match, got %d", len(matches))
	}
	if data["race"] == nil {
		t.Fatalf("expected a race on the slate")
	}
}

func TestMakePickFlow(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/picks",
		`{"eventId":"rb-leipzig-bayern","key":"matchResult","value":"RB win"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Locked events reject picks with 409.
	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/picks",
		`{"eventId":"f1-austin","key":"raceWinner","value":"Max Verstappen"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for locked event, got %d", rec.Code)
	}
	errorObj, _ := envelope["error"].(map[string]any)
	if errorObj["status"] != "FAILED_PRECONDITION" {
		t.Fatalf("unexpected error status: %v", errorObj["status"])
	}
}

func TestMakePickValidation(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/picks", `{"eventId":"rb-leipzig-bayern"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", rec.Code)
	}
}

func TestSimulateAndRevealEvent(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/events/salzburg-rapid/results", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	outcome, _ := envelope["data"].(map[string]any)
	if outcome["matchResult"] == "" {
		t.Fatalf("expected matchResult in outcome: %v", outcome)
	}

	// Reveal without a pick is a failed precondition.
	rec, _ = doJSON(t, router, http.MethodPost, "/v1/events/salzburg-rapid/reveal", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 without a pick, got %d", rec.Code)
	}
}

func TestFantasyWeekFlow(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPut, "/v1/fantasy/squad",
		`{"football":{"fwd":"p1","mid":"p2","def":"p4","flex":"p5","captainId":"p1"},"f1":{"driver1":"d3","driver2":"d4","team":"t2"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update squad: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/fantasy/simulate-week", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("simulate week: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data, _ := envelope["data"].(map[string]any)
	if _, ok := data["footballMatches"]; !ok {
		t.Fatalf("expected footballMatches in stats: %v", data)
	}

	rec, envelope = doJSON(t, router, http.MethodPost, "/v1/fantasy/points", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("calculate points: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	breakdown, _ := envelope["data"].(map[string]any)
	if _, ok := breakdown["total"]; !ok {
		t.Fatalf("expected total in breakdown: %v", breakdown)
	}
}

func TestSquadCapRejected(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPut, "/v1/fantasy/squad",
		`{"f1":{"driver1":"d1","driver2":"d2","team":"t1"}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for cap breach, got %d", rec.Code)
	}
	errorObj, _ := envelope["error"].(map[string]any)
	if errorObj["status"] != "INVALID_ARGUMENT" {
		t.Fatalf("unexpected error status: %v", errorObj["status"])
	}
}

func TestDemoModeFlow(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/demo/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle demo: expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["demoMode"] != true {
		t.Fatalf("expected demoMode=true, got %v", data)
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/leaderboards", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get leaderboards: expected 200, got %d", rec.Code)
	}
	data, _ = envelope["data"].(map[string]any)
	seasonBoard, _ := data["seasonBoard"].(map[string]any)
	entries, _ := seasonBoard["entries"].([]any)
	if len(entries) == 0 {
		t.Fatalf("expected demo season entries")
	}
}

func TestUpdateFiltersAndCountry(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPut, "/v1/leaderboards/filters",
		`{"sport":"Formula 1","timeframe":"Monthly","scope":"Global"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update filters: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec, _ = doJSON(t, router, http.MethodPut, "/v1/profile/country", `{"country":"XX"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown country, got %d", rec.Code)
	}

	rec, envelope := doJSON(t, router, http.MethodPut, "/v1/profile/country", `{"country":"AT"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update country: expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["country"] != "AT" {
		t.Fatalf("expected country AT, got %v", data)
	}
}
