package slate

import (
	"testing"
	"time"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
)

func TestBuildWindowFilter(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	events := []event.Event{
		{
			ID:      "near",
			Title:   "RB Leipzig vs Bayern Munich",
			Sport:   event.SportFootball,
			StartAt: now.AddDate(0, 0, 3),
		},
		{
			ID:      "far",
			Title:   "Red Bull Salzburg vs Rapid Wien",
			Sport:   event.SportFootball,
			StartAt: now.AddDate(0, 0, 10),
		},
	}

	got := Build(events, now)

	if len(got.Matches) != 1 {
		t.Fatalf("expected 1 match in window, got %d", len(got.Matches))
	}
	if got.Matches[0].ID != "near" {
		t.Fatalf("unexpected match in window: %s", got.Matches[0].ID)
	}
	if got.WeekID != "week_2026_9_1" {
		t.Fatalf("unexpected week id: %s", got.WeekID)
	}
}

func TestBuildTitleParsing(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	events := []event.Event{
		{ID: "m1", Title: "RB Leipzig vs Bayern Munich", Sport: event.SportFootball, StartAt: now.Add(48 * time.Hour)},
		{ID: "m2", Title: "Friendly Exhibition", Sport: event.SportFootball, StartAt: now.Add(72 * time.Hour)},
	}

	got := Build(events, now)

	if got.Matches[0].Club != "RB Leipzig" || got.Matches[0].Opponent != "Bayern Munich" {
		t.Fatalf("bad title split: %q / %q", got.Matches[0].Club, got.Matches[0].Opponent)
	}
	if got.Matches[1].Club != "Friendly Exhibition" || got.Matches[1].Opponent != "Opponent" {
		t.Fatalf("expected placeholder opponent, got %q / %q", got.Matches[1].Club, got.Matches[1].Opponent)
	}
}

func TestBuildSingleEarliestRace(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	events := []event.Event{
		{ID: "gp-late", Title: "F1 Monza Grand Prix", Sport: event.SportFormula1, StartAt: now.Add(96 * time.Hour)},
		{ID: "gp-early", Title: "F1 Zandvoort Grand Prix", Sport: event.SportFormula1, StartAt: now.Add(24 * time.Hour)},
	}

	got := Build(events, now)

	if got.Race == nil {
		t.Fatal("expected a race in the slate")
	}
	if got.Race.ID != "gp-early" {
		t.Fatalf("expected earliest race, got %s", got.Race.ID)
	}
}

func TestBuildLockTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	start := now.Add(36 * time.Hour)

	got := Build([]event.Event{
		{ID: "m1", Title: "A vs B", Sport: event.SportFootball, StartAt: start},
	}, now)

	if want := start.Add(-15 * time.Minute); !got.LockAt.Equal(want) {
		t.Fatalf("lock time: got %v want %v", got.LockAt, want)
	}
}

func TestBuildLockFallbackWhenEmpty(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	got := Build(nil, now)

	windowEnd := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	if !got.LockAt.Equal(windowEnd) {
		t.Fatalf("lock fallback: got %v want %v", got.LockAt, windowEnd)
	}
	if len(got.Matches) != 0 || got.Race != nil {
		t.Fatal("expected an empty slate")
	}
}

func TestWeekIDStableAcrossDay(t *testing.T) {
	morning := time.Date(2026, 9, 3, 0, 5, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 3, 23, 55, 0, 0, time.UTC)

	a := Build(nil, morning)
	b := Build(nil, evening)
	if a.WeekID != b.WeekID {
		t.Fatalf("week id changed with time of day: %s vs %s", a.WeekID, b.WeekID)
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)); got != "2026-09" {
		t.Fatalf("month key: got %s", got)
	}
}
