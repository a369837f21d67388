package simulation

import (
	"github.com/wingfantasy/wingfantasy/internal/domain/roster"
	"github.com/wingfantasy/wingfantasy/internal/domain/slate"
	"github.com/wingfantasy/wingfantasy/internal/platform/rng"
)

// RaceStreamOffset separates the race stream from the football stream so the
// two simulations never consume from the same sequence.
const RaceStreamOffset = 1000

// DNFFinishPos is the sentinel classification for drivers who did not finish.
const DNFFinishPos = 20

// SimulateWeek runs both simulation routines for the slate and returns the
// complete stats. It never fails: an empty match list yields an empty slice
// and a missing race yields a nil race.
func SimulateWeek(seed int64, s slate.WeeklySlate, catalog roster.Catalog) Stats {
	return Stats{
		Matches: SimulateFootballWeek(seed, s, catalog),
		Race:    SimulateRace(seed+RaceStreamOffset, s, catalog),
	}
}

// SimulateFootballWeek draws team and player statistics for every match in
// slate order. The draw order is part of the reproducibility contract: per
// match — win, clean sheet, goals; then per club player in catalog order —
// minutes, goal, assist, yellow, red. Conditional draws (the sub-90-minute
// branch, the goal draw for non-forwards) consume nothing when skipped.
func SimulateFootballWeek(seed int64, s slate.WeeklySlate, catalog roster.Catalog) []MatchStats {
	state := rng.Seed(seed)
	out := make([]MatchStats, 0, len(s.Matches))

	for _, match := range s.Matches {
		var f float64

		f, state = rng.Next(state)
		won := f > 0.5
		f, state = rng.Next(state)
		cleanSheet := f > 0.6
		var goals int
		goals, state = rng.NextIntn(state, 4)

		clubPlayers := catalog.PlayersByClub(match.Club)
		lines := make([]PlayerLine, 0, len(clubPlayers))
		for _, p := range clubPlayers {
			var line PlayerLine
			line, state = simulatePlayer(state, p)
			lines = append(lines, line)
		}

		out = append(out, MatchStats{
			MatchID:    match.ID,
			Club:       match.Club,
			Won:        won,
			CleanSheet: cleanSheet,
			Goals:      goals,
			Players:    lines,
		})
	}

	return out
}

func simulatePlayer(state rng.State, p roster.Player) (PlayerLine, rng.State) {
	var f float64

	minutes := 90
	f, state = rng.Next(state)
	if f <= 0.2 {
		minutes, state = rng.NextIntn(state, 90)
	}

	goals := 0
	if p.Role == roster.RoleForward {
		f, state = rng.Next(state)
		if f > 0.7 {
			goals = 1
		}
	}

	assists := 0
	f, state = rng.Next(state)
	if f > 0.8 {
		assists = 1
	}

	yellow := 0
	f, state = rng.Next(state)
	if f > 0.9 {
		yellow = 1
	}

	red := 0
	f, state = rng.Next(state)
	if f > 0.97 {
		red = 1
	}

	return PlayerLine{
		PlayerID:    p.ID,
		Minutes:     minutes,
		Goals:       goals,
		Assists:     assists,
		YellowCards: yellow,
		RedCards:    red,
	}, state
}

// SimulateRace draws race results for every catalog driver in order, or
// returns nil when the slate has no race. Grid position is the driver's
// catalog index + 1. DNF drivers skip the finish and fastest-lap draws and
// classify at the sentinel position.
func SimulateRace(seed int64, s slate.WeeklySlate, catalog roster.Catalog) *RaceStats {
	if s.Race == nil {
		return nil
	}

	state := rng.Seed(seed)
	drivers := catalog.Drivers()
	out := make([]DriverStats, 0, len(drivers))

	for idx, d := range drivers {
		var f float64

		f, state = rng.Next(state)
		dnf := f > 0.85

		finish := DNFFinishPos
		fastestLap := false
		if !dnf {
			var n int
			n, state = rng.NextIntn(state, 10)
			finish = n + 1
			f, state = rng.Next(state)
			fastestLap = f > 0.75
		}

		out = append(out, DriverStats{
			DriverID:   d.ID,
			GridPos:    idx + 1,
			FinishPos:  finish,
			FastestLap: fastestLap,
			DNF:        dnf,
		})
	}

	return &RaceStats{RaceID: s.Race.ID, Drivers: out}
}
