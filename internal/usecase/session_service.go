package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
	"github.com/wingfantasy/wingfantasy/internal/domain/leaderboard"
	"github.com/wingfantasy/wingfantasy/internal/domain/profile"
	"github.com/wingfantasy/wingfantasy/internal/domain/session"
	"github.com/wingfantasy/wingfantasy/internal/domain/slate"
	"github.com/wingfantasy/wingfantasy/internal/infrastructure/store"
	"github.com/wingfantasy/wingfantasy/internal/platform/id"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
)

// EventRepository is the read surface the session layer needs over the event
// pool.
type EventRepository interface {
	List(ctx context.Context) ([]event.Event, error)
	GetByID(ctx context.Context, id string) (event.Event, error)
}

// SessionService owns session lifecycle: bootstrapping from snapshots,
// keeping the weekly slate current, and persisting state. Snapshot saves are
// best-effort: failures are logged and never surfaced to callers.
type SessionService struct {
	events    EventRepository
	snapshots *store.Snapshots
	ids       id.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewSessionService(events EventRepository, snapshots *store.Snapshots, ids id.Generator, logger *logging.Logger) *SessionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SessionService{
		events:    events,
		snapshots: snapshots,
		ids:       ids,
		logger:    logger,
		now:       time.Now,
	}
}

// Bootstrap restores the session, profile and leaderboards from snapshots.
// Anything that fails to load starts fresh; a stored seed always wins over
// the one inside the session snapshot.
func (s *SessionService) Bootstrap(ctx context.Context) (*session.State, profile.Profile, *leaderboard.Data, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Bootstrap")
	defer span.End()

	state, err := s.snapshots.LoadSession(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "session snapshot unavailable, starting fresh", "error", err)

		seed, seedErr := s.ids.NewSeed()
		if seedErr != nil {
			return nil, profile.Profile{}, nil, fmt.Errorf("generate session seed: %w", seedErr)
		}
		state = session.NewState(seed)
	}

	if seed, seedErr := s.snapshots.LoadSeed(ctx); seedErr == nil {
		state.Seed = seed
	}

	user, err := s.snapshots.LoadProfile(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "profile snapshot unavailable, starting fresh", "error", err)

		userID, idErr := s.ids.NewUserID()
		if idErr != nil {
			return nil, profile.Profile{}, nil, fmt.Errorf("generate user id: %w", idErr)
		}
		user = profile.Profile{UserID: userID, Name: "Player", Country: "ZA", Handle: "@player"}
	}

	boards, err := s.snapshots.LoadLeaderboards(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "leaderboard snapshot unavailable, starting fresh", "error", err)
		boards = leaderboard.NewData()
	}

	if err := s.EnsureWeeklySlate(ctx, state); err != nil {
		return nil, profile.Profile{}, nil, err
	}

	return state, user, boards, nil
}

// EnsureWeeklySlate rebuilds the slate from the event pool. Crossing into a
// new week resets weekly points and discards simulated stats; rebuilding
// within the same week keeps both.
func (s *SessionService) EnsureWeeklySlate(ctx context.Context, state *session.State) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.EnsureWeeklySlate")
	defer span.End()

	if state == nil {
		return fmt.Errorf("%w: session state is required", ErrInvalidInput)
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return fmt.Errorf("list events for slate: %w", err)
	}

	built := slate.Build(events, s.now())
	if state.Slate == nil || state.Slate.WeekID != built.WeekID {
		state.Slate = &built
		state.WeeklyPoints = 0
		state.Stats = nil
		return nil
	}

	state.Slate = &built
	return nil
}

// UpdateCountry changes the profile country used on country-scoped boards.
func (s *SessionService) UpdateCountry(ctx context.Context, user *profile.Profile, country string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.UpdateCountry")
	defer span.End()

	if user == nil {
		return fmt.Errorf("%w: profile is required", ErrInvalidInput)
	}
	if !profile.ValidCountry(country) {
		return fmt.Errorf("%w: unknown country %q", ErrInvalidInput, country)
	}

	user.Country = country
	s.persistProfile(ctx, *user)
	return nil
}

// UpdateFilters remembers the last leaderboard view.
func (s *SessionService) UpdateFilters(ctx context.Context, state *session.State, filters session.Filters) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.UpdateFilters")
	defer span.End()

	if state == nil {
		return fmt.Errorf("%w: session state is required", ErrInvalidInput)
	}
	if _, ok := event.AllSports[filters.Sport]; !ok {
		return fmt.Errorf("%w: unknown sport %q", ErrInvalidInput, filters.Sport)
	}
	switch filters.Timeframe {
	case session.TimeframeWeekly, session.TimeframeMonthly:
	default:
		return fmt.Errorf("%w: unknown timeframe %q", ErrInvalidInput, filters.Timeframe)
	}
	switch filters.Scope {
	case session.ScopeCountry, session.ScopeGlobal:
	default:
		return fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, filters.Scope)
	}
	if filters.Scope == session.ScopeCountry && !profile.ValidCountry(filters.Country) {
		return fmt.Errorf("%w: unknown country %q", ErrInvalidInput, filters.Country)
	}

	state.Filters = filters
	s.Persist(ctx, state)
	return nil
}

// Persist saves the session snapshot and the seed, logging failures.
func (s *SessionService) Persist(ctx context.Context, state *session.State) {
	if state == nil {
		return
	}
	if err := s.snapshots.SaveSession(ctx, state); err != nil {
		s.logger.ErrorContext(ctx, "save session snapshot", "error", err)
	}
	if err := s.snapshots.SaveSeed(ctx, state.Seed); err != nil {
		s.logger.ErrorContext(ctx, "save seed snapshot", "error", err)
	}
}

// PersistBoards saves the leaderboard snapshot, logging failures.
func (s *SessionService) PersistBoards(ctx context.Context, boards *leaderboard.Data) {
	if boards == nil {
		return
	}
	if err := s.snapshots.SaveLeaderboards(ctx, boards); err != nil {
		s.logger.ErrorContext(ctx, "save leaderboard snapshot", "error", err)
	}
}

func (s *SessionService) persistProfile(ctx context.Context, user profile.Profile) {
	if err := s.snapshots.SaveProfile(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "save profile snapshot", "error", err)
	}
}
