// Package session defines the explicit per-session state object. Every
// engine operation receives the session it works on; there is no process-wide
// singleton.
package session

import (
	"github.com/wingfantasy/wingfantasy/internal/domain/event"
	"github.com/wingfantasy/wingfantasy/internal/domain/simulation"
	"github.com/wingfantasy/wingfantasy/internal/domain/slate"
	"github.com/wingfantasy/wingfantasy/internal/domain/squad"
)

// Pick is a user's set of predictions for one event.
type Pick struct {
	EventID string
	Picks   event.Outcome
}

// Passport tracks fan-passport progress toward the season badge.
type Passport struct {
	Watched   int
	Predicted int
	Created   int
	Badge     string
}

// SeasonBadge is awarded once all passport counters reach their targets.
const SeasonBadge = "season_pass_001"

const (
	maxPredictedProgress = 3
	maxWatchedProgress   = 1
	streakTokenThreshold = 7
)

// BumpPredicted advances the prediction counter, capped at its target.
func (p *Passport) BumpPredicted() {
	if p.Predicted < maxPredictedProgress {
		p.Predicted++
	}
}

// BumpWatched advances the watch counter, capped at its target.
func (p *Passport) BumpWatched() {
	if p.Watched < maxWatchedProgress {
		p.Watched++
	}
}

// BadgeEarned reports whether all passport targets are met.
func (p Passport) BadgeEarned() bool {
	return p.Watched >= maxWatchedProgress && p.Predicted >= maxPredictedProgress && p.Created >= 1
}

// Timeframe selects the aggregation period on leaderboard queries.
type Timeframe string

const (
	TimeframeWeekly  Timeframe = "Weekly"
	TimeframeMonthly Timeframe = "Monthly"
)

// Scope selects country-filtered or global leaderboard views.
type Scope string

const (
	ScopeCountry Scope = "Country"
	ScopeGlobal  Scope = "Global"
)

// Filters is the last leaderboard view the user looked at.
type Filters struct {
	Sport     event.Sport
	Timeframe Timeframe
	Scope     Scope
	Country   string
}

// WeekRecord is one completed week's total, kept for the recent-history view.
type WeekRecord struct {
	WeekID string
	Points int
}

// WeekHistoryLimit caps how many completed weeks the session remembers.
const WeekHistoryLimit = 4

// State is the complete mutable session: picks, per-event results and points,
// passport progress, the fantasy squad, the current slate and its simulated
// stats, accumulated points, and the RNG seed. The seed only changes on an
// explicit reset.
type State struct {
	Picks        []Pick
	Results      map[string]event.Outcome
	Points       map[string]int
	Passport     Passport
	StreakDays   int
	WingTokens   int
	Squad        squad.FantasySquad
	Slate        *slate.WeeklySlate
	Stats        *simulation.Stats
	WeeklyPoints int
	SeasonPoints int
	WeekHistory  []WeekRecord
	Seed         int64
	DemoMode     bool
	Filters      Filters
}

func NewState(seed int64) *State {
	return &State{
		Results: make(map[string]event.Outcome),
		Points:  make(map[string]int),
		Seed:    seed,
		Filters: Filters{
			Sport:     event.SportFootball,
			Timeframe: TimeframeWeekly,
			Scope:     ScopeCountry,
			Country:   "ZA",
		},
	}
}

// PickFor returns the user's pick for the event, if any.
func (s *State) PickFor(eventID string) (Pick, bool) {
	for _, p := range s.Picks {
		if p.EventID == eventID {
			return p, true
		}
	}
	return Pick{}, false
}

// RecordWeek appends a completed week, trimming to the history limit.
func (s *State) RecordWeek(weekID string, points int) {
	s.WeekHistory = append(s.WeekHistory, WeekRecord{WeekID: weekID, Points: points})
	if overflow := len(s.WeekHistory) - WeekHistoryLimit; overflow > 0 {
		s.WeekHistory = s.WeekHistory[overflow:]
	}
}

// RegisterStreakDay advances the daily streak and reports whether a wing
// token was earned. Tokens accrue on every reveal once the streak reaches a
// week.
func (s *State) RegisterStreakDay() bool {
	s.StreakDays++
	if s.StreakDays >= streakTokenThreshold {
		s.WingTokens++
		return true
	}
	return false
}
