package usecase

import (
	"context"
	"fmt"

	"github.com/wingfantasy/wingfantasy/internal/domain/roster"
	"github.com/wingfantasy/wingfantasy/internal/domain/session"
	"github.com/wingfantasy/wingfantasy/internal/domain/squad"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
)

// SquadService manages the session's fantasy squad under the salary caps.
type SquadService struct {
	catalog roster.Catalog
	rules   squad.Rules
	session *SessionService
	logger  *logging.Logger
}

func NewSquadService(catalog roster.Catalog, rules squad.Rules, sessions *SessionService, logger *logging.Logger) *SquadService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SquadService{
		catalog: catalog,
		rules:   rules,
		session: sessions,
		logger:  logger,
	}
}

// UpdateSquad replaces the session squad after validating selections,
// captains and salary caps.
func (s *SquadService) UpdateSquad(ctx context.Context, state *session.State, sq squad.FantasySquad) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.UpdateSquad")
	defer span.End()

	if state == nil {
		return fmt.Errorf("%w: session state is required", ErrInvalidInput)
	}
	if err := squad.Validate(sq, s.catalog, s.rules); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	state.Squad = sq

	s.logger.InfoContext(ctx, "fantasy squad updated",
		"football_cost", sq.FootballCost(s.catalog),
		"f1_cost", sq.F1Cost(s.catalog),
	)
	s.session.Persist(ctx, state)
	return nil
}
