package usecase

import (
	"context"
	"fmt"

	"github.com/wingfantasy/wingfantasy/internal/domain/roster"
	"github.com/wingfantasy/wingfantasy/internal/domain/session"
	"github.com/wingfantasy/wingfantasy/internal/domain/simulation"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
)

// SimulationService runs the deterministic week simulation for a session.
type SimulationService struct {
	catalog roster.Catalog
	session *SessionService
	logger  *logging.Logger
}

func NewSimulationService(catalog roster.Catalog, sessions *SessionService, logger *logging.Logger) *SimulationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SimulationService{
		catalog: catalog,
		session: sessions,
		logger:  logger,
	}
}

// SimulateWeek generates stats for the current slate off the session seed.
// Re-running with the same seed and slate reproduces identical stats.
func (s *SimulationService) SimulateWeek(ctx context.Context, state *session.State) (*simulation.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationService.SimulateWeek")
	defer span.End()

	if state == nil {
		return nil, fmt.Errorf("%w: session state is required", ErrInvalidInput)
	}
	if state.Slate == nil {
		return nil, fmt.Errorf("%w: no weekly slate to simulate", ErrPreconditionNotMet)
	}

	stats := simulation.SimulateWeek(state.Seed, *state.Slate, s.catalog)
	state.Stats = &stats

	s.logger.InfoContext(ctx, "week simulated",
		"week_id", state.Slate.WeekID,
		"seed", state.Seed,
		"matches", len(stats.Matches),
		"has_race", stats.Race != nil,
	)
	s.session.Persist(ctx, state)
	return &stats, nil
}
