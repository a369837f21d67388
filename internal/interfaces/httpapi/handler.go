package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
	"github.com/wingfantasy/wingfantasy/internal/domain/leaderboard"
	"github.com/wingfantasy/wingfantasy/internal/domain/profile"
	"github.com/wingfantasy/wingfantasy/internal/domain/session"
	"github.com/wingfantasy/wingfantasy/internal/domain/squad"
	"github.com/wingfantasy/wingfantasy/internal/usecase"
)

// Handler serves the single-session engine over HTTP. All operations work on
// the one session owned by the process; the mutex serializes every request
// touching it.
type Handler struct {
	mu     sync.Mutex
	state  *session.State
	user   profile.Profile
	boards *leaderboard.Data

	events     usecase.EventRepository
	sessions   *usecase.SessionService
	picks      *usecase.PicksService
	squads     *usecase.SquadService
	sims       *usecase.SimulationService
	scores     *usecase.ScoringService
	demos      *usecase.DemoService
	boardQuery *usecase.LeaderboardQuery

	logger    *slog.Logger
	validator *validator.Validate
	now       func() time.Time
}

type HandlerDeps struct {
	State  *session.State
	User   profile.Profile
	Boards *leaderboard.Data

	Events     usecase.EventRepository
	Sessions   *usecase.SessionService
	Picks      *usecase.PicksService
	Squads     *usecase.SquadService
	Sims       *usecase.SimulationService
	Scores     *usecase.ScoringService
	Demos      *usecase.DemoService
	BoardQuery *usecase.LeaderboardQuery

	Logger *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		state:      deps.State,
		user:       deps.User,
		boards:     deps.Boards,
		events:     deps.Events,
		sessions:   deps.Sessions,
		picks:      deps.Picks,
		squads:     deps.Squads,
		sims:       deps.Sims,
		scores:     deps.Scores,
		demos:      deps.Demos,
		boardQuery: deps.BoardQuery,
		logger:     logger,
		validator:  validator.New(),
		now:        time.Now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	events, err := h.events.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	now := h.now()
	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(e, now))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSlate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSlate")
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.sessions.EnsureWeeklySlate(ctx, h.state); err != nil {
		h.logger.ErrorContext(ctx, "ensure weekly slate failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, slateToDTO(h.state.Slate))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(h.state, h.user))
}

func (h *Handler) MakePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MakePick")
	defer span.End()

	var req makePickRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.picks.MakePick(ctx, h.state, req.EventID, event.PickKey(req.Key), req.Value)
	if err != nil {
		h.logger.WarnContext(ctx, "make pick failed", "event_id", req.EventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(h.state, h.user))
}

func (h *Handler) SimulateEventResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SimulateEventResults")
	defer span.End()

	eventID := r.PathValue("eventID")

	h.mu.Lock()
	defer h.mu.Unlock()

	outcome, err := h.picks.SimulateResults(ctx, h.state, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "simulate results failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outcomeToDTO(outcome))
}

func (h *Handler) RevealEventResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RevealEventResults")
	defer span.End()

	eventID := r.PathValue("eventID")

	h.mu.Lock()
	defer h.mu.Unlock()

	points, err := h.picks.RevealResults(ctx, h.state, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "reveal results failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, revealDTO{
		EventID:    eventID,
		Points:     points,
		StreakDays: h.state.StreakDays,
		WingTokens: h.state.WingTokens,
		Passport:   passportToDTO(h.state.Passport),
	})
}

func (h *Handler) UpdateSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSquad")
	defer span.End()

	var req squadRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.squads.UpdateSquad(ctx, h.state, squad.FantasySquad{
		Football: squad.FootballSlots{
			Forward:   req.Football.Forward,
			Midfield:  req.Football.Midfield,
			Defense:   req.Football.Defense,
			Flex:      req.Football.Flex,
			CaptainID: req.Football.CaptainID,
		},
		F1: squad.F1Slots{
			Driver1:   req.F1.Driver1,
			Driver2:   req.F1.Driver2,
			Team:      req.F1.Team,
			CaptainID: req.F1.CaptainID,
		},
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update squad failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(h.state, h.user))
}

func (h *Handler) SimulateWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SimulateWeek")
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.sessions.EnsureWeeklySlate(ctx, h.state); err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.sims.SimulateWeek(ctx, h.state)
	if err != nil {
		h.logger.WarnContext(ctx, "simulate week failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTO(stats))
}

func (h *Handler) CalculateFantasyPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CalculateFantasyPoints")
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	breakdown, err := h.scores.CalculateFantasyPoints(ctx, h.state, h.user, h.boards)
	if err != nil {
		h.logger.WarnContext(ctx, "calculate fantasy points failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, breakdownDTO{
		Football: breakdown.Football,
		F1:       breakdown.F1,
		Total:    breakdown.Total,
	})
}

func (h *Handler) GetLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboards")
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	sportView, seasonView, err := h.boardQuery.Query(ctx, h.boards, h.state, h.user)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardsDTO{
		Filters: filtersToDTO(h.state.Filters),
		Sport:   boardViewToDTO(sportView),
		Season:  boardViewToDTO(seasonView),
	})
}

func (h *Handler) UpdateLeaderboardFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLeaderboardFilters")
	defer span.End()

	var req filtersRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.sessions.UpdateFilters(ctx, h.state, session.Filters{
		Sport:     event.Sport(req.Sport),
		Timeframe: session.Timeframe(req.Timeframe),
		Scope:     session.Scope(req.Scope),
		Country:   req.Country,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, filtersToDTO(h.state.Filters))
}

func (h *Handler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCountry")
	defer span.End()

	var req countryRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.sessions.UpdateCountry(ctx, &h.user, req.Country); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(h.user))
}

func (h *Handler) ToggleDemoMode(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleDemoMode")
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.demos.Toggle(ctx, h.state, h.boards); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"demoMode": h.state.DemoMode})
}

func (h *Handler) ResetDemoData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetDemoData")
	defer span.End()

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.demos.Reset(ctx, h.state, h.boards); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"seed":     h.state.Seed,
		"demoMode": h.state.DemoMode,
	})
}

// decode parses and validates a JSON request body, writing the error response
// itself on failure.
func (h *Handler) decode(ctx context.Context, w http.ResponseWriter, r *http.Request, out any) bool {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(out); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed request body", usecase.ErrInvalidInput))
		return false
	}
	if err := h.validator.Struct(out); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return false
	}
	return true
}
