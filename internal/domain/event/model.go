package event

import (
	"fmt"
	"time"
)

// Sport discriminates the two event families. Every switch over Sport must
// handle both values and fail on anything else.
type Sport string

const (
	SportFootball Sport = "Football"
	SportFormula1 Sport = "Formula 1"
)

var AllSports = map[Sport]struct{}{
	SportFootball: {},
	SportFormula1: {},
}

// PickKey identifies one predictable facet of an event.
type PickKey string

const (
	PickMatchResult PickKey = "matchResult"
	PickFirstScorer PickKey = "firstScorer"
	PickTotalGoals  PickKey = "totalGoals"
	PickRaceWinner  PickKey = "raceWinner"
	PickFastestLap  PickKey = "fastestLap"
	PickSafetyCar   PickKey = "safetyCar"
)

// Fixed option pools for closed-set pick keys.
var (
	MatchResultOptions = []string{"RB win", "Draw", "Opponent win"}
	TotalGoalsOptions  = []string{"0–1", "2–3", "4–5", "6+"}
	SafetyCarOptions   = []string{"Yes", "No"}
)

// Outcome maps pick keys to their resolved (or picked) option values.
type Outcome map[PickKey]string

// FootballMeta carries football-specific event data.
type FootballMeta struct {
	Opponent string
	Scorers  []string
}

// RaceMeta carries motorsport-specific event data.
type RaceMeta struct {
	Location string
}

// Event is one schedulable fixture users can predict on.
type Event struct {
	ID       string
	Title    string
	Sport    Sport
	StartAt  time.Time
	PickKeys []PickKey
	Football *FootballMeta
	Race     *RaceMeta
}

// LockLead is how long before the start picks freeze.
const LockLead = 15 * time.Minute

// Locked reports whether picks for the event are frozen at the given instant.
func (e Event) Locked(now time.Time) bool {
	return e.StartAt.Sub(now) < LockLead
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if e.StartAt.IsZero() {
		return fmt.Errorf("event start time is required")
	}
	switch e.Sport {
	case SportFootball:
		if e.Race != nil {
			return fmt.Errorf("football event %s carries race meta", e.ID)
		}
	case SportFormula1:
		if e.Football != nil {
			return fmt.Errorf("race event %s carries football meta", e.ID)
		}
	default:
		return fmt.Errorf("invalid event sport: %s", e.Sport)
	}

	return nil
}
