package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
	"github.com/wingfantasy/wingfantasy/internal/domain/roster"
	"github.com/wingfantasy/wingfantasy/internal/domain/session"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
	"github.com/wingfantasy/wingfantasy/internal/platform/rng"
)

// Event result streams live at seed+10000 plus a per-event hash offset, so
// resolving one event never disturbs another's draws or the week simulation
// streams.
const (
	resultStreamBase = 10_000
	resultStreamSpan = 90_000
)

// CorrectPickPoints is awarded per pick key that matches the resolved
// outcome.
const CorrectPickPoints = 10

// PicksService covers the pick lifecycle: making picks before lock,
// resolving outcomes after lock, and revealing the score.
type PicksService struct {
	events  EventRepository
	catalog roster.Catalog
	session *SessionService
	logger  *logging.Logger
	now     func() time.Time
}

func NewPicksService(events EventRepository, catalog roster.Catalog, sessions *SessionService, logger *logging.Logger) *PicksService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PicksService{
		events:  events,
		catalog: catalog,
		session: sessions,
		logger:  logger,
		now:     time.Now,
	}
}

// MakePick records one pick key for an event. Picks on locked events are
// rejected; the first pick on an event advances passport prediction progress.
func (s *PicksService) MakePick(ctx context.Context, state *session.State, eventID string, key event.PickKey, value string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PicksService.MakePick")
	defer span.End()

	if state == nil {
		return fmt.Errorf("%w: session state is required", ErrInvalidInput)
	}

	item, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}
	if item.Locked(s.now()) {
		return fmt.Errorf("%w: %s", ErrEventLocked, eventID)
	}
	if err := s.validatePick(item, key, value); err != nil {
		return err
	}

	updated := false
	for i := range state.Picks {
		if state.Picks[i].EventID == eventID {
			state.Picks[i].Picks[key] = value
			updated = true
			break
		}
	}
	if !updated {
		state.Picks = append(state.Picks, session.Pick{
			EventID: eventID,
			Picks:   event.Outcome{key: value},
		})
		state.Passport.BumpPredicted()
	}

	s.session.Persist(ctx, state)
	return nil
}

// SimulateResults resolves an event's outcome on its dedicated RNG stream.
// Only locked events resolve; resolving twice yields the identical outcome.
func (s *PicksService) SimulateResults(ctx context.Context, state *session.State, eventID string) (event.Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PicksService.SimulateResults")
	defer span.End()

	if state == nil {
		return nil, fmt.Errorf("%w: session state is required", ErrInvalidInput)
	}

	item, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}
	if !item.Locked(s.now()) {
		return nil, fmt.Errorf("%w: event %s has not locked yet", ErrPreconditionNotMet, eventID)
	}

	outcome := resolveOutcome(state.Seed, item, s.catalog)
	state.Results[eventID] = outcome

	s.logger.InfoContext(ctx, "event resolved", "event_id", eventID, "sport", string(item.Sport))
	s.session.Persist(ctx, state)
	return outcome, nil
}

// RevealResults scores the user's pick against the resolved outcome and
// advances passport, streak and token progress.
func (s *PicksService) RevealResults(ctx context.Context, state *session.State, eventID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PicksService.RevealResults")
	defer span.End()

	if state == nil {
		return 0, fmt.Errorf("%w: session state is required", ErrInvalidInput)
	}

	item, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}

	pick, ok := state.PickFor(eventID)
	if !ok {
		return 0, fmt.Errorf("%w: no pick for event %s", ErrPreconditionNotMet, eventID)
	}
	outcome, ok := state.Results[eventID]
	if !ok {
		return 0, fmt.Errorf("%w: event %s has no resolved outcome", ErrPreconditionNotMet, eventID)
	}

	points := 0
	for _, key := range item.PickKeys {
		if picked, made := pick.Picks[key]; made && picked == outcome[key] {
			points += CorrectPickPoints
		}
	}

	state.Points[eventID] = points
	state.Passport.BumpWatched()
	if state.Passport.BadgeEarned() {
		state.Passport.Badge = session.SeasonBadge
	}
	earnedToken := state.RegisterStreakDay()

	s.logger.InfoContext(ctx, "results revealed",
		"event_id", eventID,
		"points", points,
		"streak_days", state.StreakDays,
		"earned_token", earnedToken,
	)
	s.session.Persist(ctx, state)
	return points, nil
}

func (s *PicksService) validatePick(item event.Event, key event.PickKey, value string) error {
	allowed := false
	for _, k := range item.PickKeys {
		if k == key {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: pick key %s not offered by event %s", ErrInvalidInput, key, item.ID)
	}

	options, err := s.optionsFor(item, key)
	if err != nil {
		return err
	}
	for _, option := range options {
		if option == value {
			return nil
		}
	}
	return fmt.Errorf("%w: value %q not valid for pick key %s", ErrInvalidInput, value, key)
}

func (s *PicksService) optionsFor(item event.Event, key event.PickKey) ([]string, error) {
	switch key {
	case event.PickMatchResult:
		return event.MatchResultOptions, nil
	case event.PickTotalGoals:
		return event.TotalGoalsOptions, nil
	case event.PickSafetyCar:
		return event.SafetyCarOptions, nil
	case event.PickFirstScorer:
		if item.Football == nil {
			return nil, fmt.Errorf("%w: event %s has no scorer pool", ErrInvalidInput, item.ID)
		}
		return item.Football.Scorers, nil
	case event.PickRaceWinner, event.PickFastestLap:
		return s.driverNames(), nil
	default:
		return nil, fmt.Errorf("%w: unknown pick key %s", ErrInvalidInput, key)
	}
}

func (s *PicksService) driverNames() []string {
	drivers := s.catalog.Drivers()
	names := make([]string, 0, len(drivers))
	for _, d := range drivers {
		names = append(names, d.Name)
	}
	return names
}

// resolveOutcome draws the event outcome. Football consumes three draws in
// order: match result, first scorer, total goals. Races consume race winner,
// fastest lap, safety car.
func resolveOutcome(seed int64, item event.Event, catalog roster.Catalog) event.Outcome {
	state := rng.Seed(seed + resultStreamBase + eventStreamOffset(item.ID))
	outcome := make(event.Outcome, len(item.PickKeys))

	switch item.Sport {
	case event.SportFootball:
		var n int
		n, state = rng.NextIntn(state, len(event.MatchResultOptions))
		outcome[event.PickMatchResult] = event.MatchResultOptions[n]
		if item.Football != nil && len(item.Football.Scorers) > 0 {
			n, state = rng.NextIntn(state, len(item.Football.Scorers))
			outcome[event.PickFirstScorer] = item.Football.Scorers[n]
		}
		n, state = rng.NextIntn(state, len(event.TotalGoalsOptions))
		outcome[event.PickTotalGoals] = event.TotalGoalsOptions[n]
	case event.SportFormula1:
		drivers := catalog.Drivers()
		var n int
		n, state = rng.NextIntn(state, len(drivers))
		outcome[event.PickRaceWinner] = drivers[n].Name
		n, state = rng.NextIntn(state, len(drivers))
		outcome[event.PickFastestLap] = drivers[n].Name
		n, state = rng.NextIntn(state, len(event.SafetyCarOptions))
		outcome[event.PickSafetyCar] = event.SafetyCarOptions[n]
	}

	return outcome
}

// eventStreamOffset spreads events across the result stream space by id
// hash.
func eventStreamOffset(eventID string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(eventID))
	return int64(h.Sum32() % resultStreamSpan)
}
