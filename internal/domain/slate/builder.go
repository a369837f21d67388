package slate

import (
	"fmt"
	"strings"
	"time"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
)

const (
	lockLead         = 15 * time.Minute
	windowDays       = 7
	titleSeparator   = " vs "
	fallbackOpponent = "Opponent"
)

// Build derives the current week's slate from the raw event list. The window
// is [start of now's day, +7 days], both ends inclusive. Build is stateless;
// callers compare WeekID against the previous slate to decide whether weekly
// aggregates must be invalidated.
func Build(events []event.Event, now time.Time) WeeklySlate {
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := windowStart.AddDate(0, 0, windowDays)

	inWindow := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.StartAt.Before(windowStart) || e.StartAt.After(windowEnd) {
			continue
		}
		inWindow = append(inWindow, e)
	}

	matches := make([]Match, 0, len(inWindow))
	var race *Race
	for _, e := range inWindow {
		switch e.Sport {
		case event.SportFootball:
			club, opponent := splitTitle(e.Title)
			matches = append(matches, Match{
				ID:       e.ID,
				Club:     club,
				Opponent: opponent,
				StartAt:  e.StartAt,
			})
		case event.SportFormula1:
			if race == nil || e.StartAt.Before(race.StartAt) {
				race = &Race{ID: e.ID, Name: e.Title, StartAt: e.StartAt}
			}
		}
	}

	lockAt := windowEnd
	if earliest, ok := earliestStart(inWindow); ok {
		lockAt = earliest.Add(-lockLead)
	}

	return WeeklySlate{
		WeekID:  WeekID(windowStart),
		LockAt:  lockAt,
		Matches: matches,
		Race:    race,
	}
}

// WeekID derives the stable aggregation key for the week starting at t. Only
// the date matters: the same week always yields the same id.
func WeekID(t time.Time) string {
	return fmt.Sprintf("week_%d_%d_%d", t.Year(), int(t.Month()), t.Day())
}

// MonthKey derives the monthly aggregation key, e.g. "2026-09".
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

func splitTitle(title string) (club, opponent string) {
	club, opponent, found := strings.Cut(title, titleSeparator)
	if !found {
		return title, fallbackOpponent
	}
	return club, opponent
}

func earliestStart(events []event.Event) (time.Time, bool) {
	var min time.Time
	for _, e := range events {
		if min.IsZero() || e.StartAt.Before(min) {
			min = e.StartAt
		}
	}
	if min.IsZero() {
		return time.Time{}, false
	}
	return min, true
}
