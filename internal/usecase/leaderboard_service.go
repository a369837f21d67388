package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/wingfantasy/wingfantasy/internal/domain/leaderboard"
	"github.com/wingfantasy/wingfantasy/internal/domain/profile"
	"github.com/wingfantasy/wingfantasy/internal/domain/session"
	"github.com/wingfantasy/wingfantasy/internal/domain/slate"
)

// BoardLimit caps how many entries a board view returns.
const BoardLimit = 20

// BoardView is one rendered leaderboard: the top entries plus the querying
// user's own rank when they sit outside the cutoff.
type BoardView struct {
	Entries   []leaderboard.Entry
	UserRank  int
	UserEntry *leaderboard.Entry
}

// LeaderboardQuery is the filtered view over all boards for one session.
type LeaderboardQuery struct {
	now func() time.Time
}

func NewLeaderboardQuery() *LeaderboardQuery {
	return &LeaderboardQuery{now: time.Now}
}

// Query returns the sport board selected by the filters plus the season
// board. Country scope keeps only entries from the filter country; global
// scope keeps everything.
func (q *LeaderboardQuery) Query(ctx context.Context, boards *leaderboard.Data, state *session.State, user profile.Profile) (sport BoardView, seasonBoard BoardView, err error) {
	_, span := startUsecaseSpan(ctx, "usecase.LeaderboardQuery.Query")
	defer span.End()

	if boards == nil || state == nil {
		return BoardView{}, BoardView{}, fmt.Errorf("%w: boards and session state are required", ErrInvalidInput)
	}

	filters := state.Filters

	var board []leaderboard.Entry
	switch filters.Timeframe {
	case session.TimeframeWeekly:
		weekID := slate.WeekID(q.now())
		if state.Slate != nil {
			weekID = state.Slate.WeekID
		}
		board = boards.Weekly[leaderboard.BoardKey{Sport: filters.Sport, Period: weekID}]
	case session.TimeframeMonthly:
		board = boards.Monthly[leaderboard.BoardKey{Sport: filters.Sport, Period: slate.MonthKey(q.now())}]
	default:
		return BoardView{}, BoardView{}, fmt.Errorf("%w: unknown timeframe %q", ErrInvalidInput, filters.Timeframe)
	}

	sport = buildView(filterByScope(board, filters), user.UserID)
	seasonBoard = buildView(filterByScope(boards.Season, filters), user.UserID)
	return sport, seasonBoard, nil
}

func filterByScope(board []leaderboard.Entry, filters session.Filters) []leaderboard.Entry {
	if filters.Scope != session.ScopeCountry {
		return append([]leaderboard.Entry(nil), board...)
	}

	out := make([]leaderboard.Entry, 0, len(board))
	for _, e := range board {
		if e.Country == filters.Country {
			out = append(out, e)
		}
	}
	return out
}

func buildView(board []leaderboard.Entry, userID string) BoardView {
	view := BoardView{}
	for i, e := range board {
		if e.UserID == userID {
			entry := e
			view.UserRank = i + 1
			view.UserEntry = &entry
			break
		}
	}

	limit := len(board)
	if limit > BoardLimit {
		limit = BoardLimit
	}
	view.Entries = append([]leaderboard.Entry(nil), board[:limit]...)
	return view
}
