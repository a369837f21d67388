package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
	"github.com/wingfantasy/wingfantasy/internal/domain/leaderboard"
	"github.com/wingfantasy/wingfantasy/internal/domain/profile"
	"github.com/wingfantasy/wingfantasy/internal/domain/roster"
	"github.com/wingfantasy/wingfantasy/internal/domain/scoring"
	"github.com/wingfantasy/wingfantasy/internal/domain/session"
	"github.com/wingfantasy/wingfantasy/internal/domain/slate"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
)

// ScoringService turns simulated stats into fantasy points and posts them to
// the leaderboards.
type ScoringService struct {
	catalog roster.Catalog
	session *SessionService
	logger  *logging.Logger
	now     func() time.Time
}

func NewScoringService(catalog roster.Catalog, sessions *SessionService, logger *logging.Logger) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringService{
		catalog: catalog,
		session: sessions,
		logger:  logger,
		now:     time.Now,
	}
}

// CalculateFantasyPoints scores the session squad against the simulated
// stats, posts sport totals to the weekly and monthly boards, posts the
// combined total to the season board, and updates the session's weekly and
// season aggregates. Weekly points are overwritten per run; season points and
// board entries only ever accumulate.
func (s *ScoringService) CalculateFantasyPoints(ctx context.Context, state *session.State, user profile.Profile, boards *leaderboard.Data) (scoring.Breakdown, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.CalculateFantasyPoints")
	defer span.End()

	if state == nil || boards == nil {
		return scoring.Breakdown{}, fmt.Errorf("%w: session state and boards are required", ErrInvalidInput)
	}
	if state.Slate == nil {
		return scoring.Breakdown{}, fmt.Errorf("%w: no weekly slate", ErrPreconditionNotMet)
	}
	if state.Stats == nil {
		return scoring.Breakdown{}, fmt.Errorf("%w: simulate the week before scoring", ErrPreconditionNotMet)
	}

	breakdown := scoring.SquadPoints(state.Squad, *state.Stats, s.catalog)

	weekID := state.Slate.WeekID
	monthKey := slate.MonthKey(s.now())

	boards.PostWeekly(leaderboard.BoardKey{Sport: event.SportFootball, Period: weekID}, user, breakdown.Football)
	boards.PostMonthly(leaderboard.BoardKey{Sport: event.SportFootball, Period: monthKey}, user, breakdown.Football)
	boards.PostWeekly(leaderboard.BoardKey{Sport: event.SportFormula1, Period: weekID}, user, breakdown.F1)
	boards.PostMonthly(leaderboard.BoardKey{Sport: event.SportFormula1, Period: monthKey}, user, breakdown.F1)
	boards.PostSeason(user, breakdown.Total)

	state.WeeklyPoints = breakdown.Total
	state.SeasonPoints += breakdown.Total
	state.RecordWeek(weekID, breakdown.Total)

	s.logger.InfoContext(ctx, "fantasy points calculated",
		"week_id", weekID,
		"football", breakdown.Football,
		"f1", breakdown.F1,
		"total", breakdown.Total,
	)
	s.session.Persist(ctx, state)
	s.session.PersistBoards(ctx, boards)
	return breakdown, nil
}
