package usecase

import (
	"context"
	"fmt"

	"github.com/wingfantasy/wingfantasy/internal/domain/leaderboard"
	"github.com/wingfantasy/wingfantasy/internal/domain/session"
	"github.com/wingfantasy/wingfantasy/internal/platform/id"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
)

// DemoUserCount is the size of the synthetic population demo mode generates.
const DemoUserCount = 300

// DemoService toggles demo mode and regenerates demo data on reset.
type DemoService struct {
	ids     id.Generator
	session *SessionService
	logger  *logging.Logger
	users   int
}

func NewDemoService(ids id.Generator, sessions *SessionService, logger *logging.Logger) *DemoService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DemoService{
		ids:     ids,
		session: sessions,
		logger:  logger,
		users:   DemoUserCount,
	}
}

// WithUserCount overrides the demo population size.
func (s *DemoService) WithUserCount(n int) *DemoService {
	if n > 0 {
		s.users = n
	}
	return s
}

// Toggle flips demo mode. Turning it on replaces the leaderboards with a
// deterministic synthetic population off the session seed; turning it off
// empties them.
func (s *DemoService) Toggle(ctx context.Context, state *session.State, boards *leaderboard.Data) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DemoService.Toggle")
	defer span.End()

	if state == nil || boards == nil {
		return fmt.Errorf("%w: session state and boards are required", ErrInvalidInput)
	}

	state.DemoMode = !state.DemoMode
	if state.DemoMode {
		users := leaderboard.DemoUsers(state.Seed, s.users)
		*boards = *leaderboard.DemoData(state.Seed, users)
	} else {
		*boards = *leaderboard.NewData()
	}

	s.logger.InfoContext(ctx, "demo mode toggled", "enabled", state.DemoMode, "seed", state.Seed)
	s.session.Persist(ctx, state)
	s.session.PersistBoards(ctx, boards)
	return nil
}

// Reset draws a fresh seed for the session. When demo mode is active the
// synthetic leaderboards are regenerated from the new seed.
func (s *DemoService) Reset(ctx context.Context, state *session.State, boards *leaderboard.Data) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DemoService.Reset")
	defer span.End()

	if state == nil || boards == nil {
		return fmt.Errorf("%w: session state and boards are required", ErrInvalidInput)
	}

	seed, err := s.ids.NewSeed()
	if err != nil {
		return fmt.Errorf("generate demo seed: %w", err)
	}
	state.Seed = seed

	if state.DemoMode {
		users := leaderboard.DemoUsers(seed, s.users)
		*boards = *leaderboard.DemoData(seed, users)
		s.session.PersistBoards(ctx, boards)
	}

	s.logger.InfoContext(ctx, "demo data reset", "seed", seed, "demo_mode", state.DemoMode)
	s.session.Persist(ctx, state)
	return nil
}
