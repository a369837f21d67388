package scoring

import (
	"testing"

	"github.com/wingfantasy/wingfantasy/internal/domain/roster"
	"github.com/wingfantasy/wingfantasy/internal/domain/simulation"
	"github.com/wingfantasy/wingfantasy/internal/domain/squad"
)

func testCatalog(t *testing.T) roster.Catalog {
	t.Helper()

	catalog, err := roster.NewCatalog(
		[]roster.Player{
			{ID: "p1", Name: "Openda", Role: roster.RoleForward, Club: "RB Leipzig", Cost: 12},
			{ID: "p2", Name: "Olmo", Role: roster.RoleMidfielder, Club: "RB Leipzig", Cost: 11},
			{ID: "p4", Name: "Henrichs", Role: roster.RoleDefender, Club: "RB Leipzig", Cost: 8},
			{ID: "p5", Name: "Blaswich", Role: roster.RoleGoalkeeper, Club: "RB Leipzig", Cost: 7},
		},
		[]roster.Driver{
			{ID: "d1", Name: "Max Verstappen", Team: "Red Bull Racing", Cost: 16},
			{ID: "d2", Name: "Sergio Perez", Team: "Red Bull Racing", Cost: 12},
			{ID: "d3", Name: "Yuki Tsunoda", Team: "Visa Cash App RB", Cost: 10},
		},
		[]roster.TeamCard{
			{ID: "t1", Name: "Red Bull Racing", Cost: 18},
			{ID: "t2", Name: "Visa Cash App RB", Cost: 12},
		},
	)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return catalog
}

func TestPlayerPoints(t *testing.T) {
	catalog := testCatalog(t)

	tests := []struct {
		name       string
		playerID   string
		line       simulation.PlayerLine
		won        bool
		cleanSheet bool
		want       int
	}{
		{
			// 1 (minutes) + 10 (2 goals x5) + 2 (win) = 13
			name:     "forward brace on winning team",
			playerID: "p1",
			line:     simulation.PlayerLine{Minutes: 90, Goals: 2},
			won:      true,
			want:     13,
		},
		{
			// 1 + 7 (goal x7) + 4 (clean sheet) + 2 (win) = 14
			name:       "defender goal with clean sheet",
			playerID:   "p4",
			line:       simulation.PlayerLine{Minutes: 90, Goals: 1},
			won:        true,
			cleanSheet: true,
			want:       14,
		},
		{
			// clean-sheet bonus requires 60 minutes
			name:       "keeper subbed off early",
			playerID:   "p5",
			line:       simulation.PlayerLine{Minutes: 45},
			cleanSheet: true,
			want:       0,
		},
		{
			// 1 + 6 (goal x6) + 3 (assist) - 1 (yellow) = 9; no clean-sheet bonus for midfield
			name:       "midfielder with cards",
			playerID:   "p2",
			line:       simulation.PlayerLine{Minutes: 88, Goals: 1, Assists: 1, YellowCards: 1},
			cleanSheet: true,
			want:       9,
		},
		{
			// 1 - 3 (red) = -2
			name:     "red card",
			playerID: "p2",
			line:     simulation.PlayerLine{Minutes: 90, RedCards: 1},
			want:     -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, ok := catalog.PlayerByID(tt.playerID)
			if !ok {
				t.Fatalf("unknown test player %s", tt.playerID)
			}
			if got := PlayerPoints(player, tt.line, tt.won, tt.cleanSheet); got != tt.want {
				t.Fatalf("got %d want %d", got, tt.want)
			}
		})
	}
}

func TestDriverPoints(t *testing.T) {
	tests := []struct {
		name  string
		stats simulation.DriverStats
		want  int
	}{
		{
			name:  "winner from pole with fastest lap",
			stats: simulation.DriverStats{GridPos: 1, FinishPos: 1, FastestLap: true},
			want:  26,
		},
		{
			// 10 (P5) + min(5, 9-5=4) = 14
			name:  "charger through the field",
			stats: simulation.DriverStats{GridPos: 9, FinishPos: 5},
			want:  14,
		},
		{
			// overtake bonus caps at 5: 1 (P10) + 5 = 6
			name:  "overtake bonus capped",
			stats: simulation.DriverStats{GridPos: 20, FinishPos: 10},
			want:  6,
		},
		{
			// lost positions earn nothing extra
			name:  "faded from pole",
			stats: simulation.DriverStats{GridPos: 1, FinishPos: 8},
			want:  4,
		},
		{
			name:  "dnf flat penalty",
			stats: simulation.DriverStats{GridPos: 2, FinishPos: simulation.DNFFinishPos, DNF: true},
			want:  -5,
		},
		{
			name:  "outside the points",
			stats: simulation.DriverStats{GridPos: 11, FinishPos: 11},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DriverPoints(tt.stats); got != tt.want {
				t.Fatalf("got %d want %d", got, tt.want)
			}
		})
	}
}

func TestTeamCardPoints(t *testing.T) {
	catalog := testCatalog(t)
	card, _ := catalog.TeamCardByID("t1")

	race := simulation.RaceStats{
		RaceID: "gp1",
		Drivers: []simulation.DriverStats{
			{DriverID: "d1", GridPos: 1, FinishPos: 1, FastestLap: true},
			{DriverID: "d2", GridPos: 2, FinishPos: 4},
			{DriverID: "d3", GridPos: 3, FinishPos: 2},
		},
	}

	// 25 (d1) + 12 (d2) + 2 (team fastest lap); d3 drives for the other team,
	// and no overtake bonus applies to team cards.
	if got := TeamCardPoints(card, race, catalog); got != 39 {
		t.Fatalf("got %d want 39", got)
	}

	race.Drivers[0].FastestLap = false
	if got := TeamCardPoints(card, race, catalog); got != 37 {
		t.Fatalf("without fastest lap: got %d want 37", got)
	}
}

func TestApplyCaptainMultiplier(t *testing.T) {
	tests := []struct {
		raw  int
		want int
	}{
		{raw: 0, want: 0},
		{raw: 10, want: 15},
		{raw: 7, want: 10},  // floor(10.5)
		{raw: -5, want: -8}, // floors toward negative infinity
		{raw: 13, want: 19}, // floor(19.5)
	}

	for _, tt := range tests {
		if got := ApplyCaptainMultiplier(tt.raw); got != tt.want {
			t.Fatalf("raw %d: got %d want %d", tt.raw, got, tt.want)
		}
	}
}

func TestSquadPoints(t *testing.T) {
	catalog := testCatalog(t)

	stats := simulation.Stats{
		Matches: []simulation.MatchStats{
			{
				MatchID:    "m1",
				Club:       "RB Leipzig",
				Won:        true,
				CleanSheet: false,
				Goals:      2,
				Players: []simulation.PlayerLine{
					{PlayerID: "p1", Minutes: 90, Goals: 2},
					{PlayerID: "p2", Minutes: 90},
				},
			},
		},
		Race: &simulation.RaceStats{
			RaceID: "gp1",
			Drivers: []simulation.DriverStats{
				{DriverID: "d1", GridPos: 1, FinishPos: 1, FastestLap: true},
				{DriverID: "d2", GridPos: 2, FinishPos: simulation.DNFFinishPos, DNF: true},
			},
		},
	}

	sq := squad.FantasySquad{
		Football: squad.FootballSlots{Forward: "p1", Midfield: "p2", CaptainID: "p1"},
		F1:       squad.F1Slots{Driver1: "d1", Driver2: "d2", CaptainID: "d2", Team: "t1"},
	}

	got := SquadPoints(sq, stats, catalog)

	// p1 raw 13, captain -> 19; p2: 1 (minutes) + 2 (win) = 3.
	if got.Football != 22 {
		t.Fatalf("football points: got %d want 22", got.Football)
	}
	// d1 26; d2 captain on a DNF: floor(-5*1.5) = -8; team card 25 + 2 = 27.
	if got.F1 != 45 {
		t.Fatalf("f1 points: got %d want 45", got.F1)
	}
	if got.Total != 67 {
		t.Fatalf("total: got %d want %d", got.Total, 67)
	}
}

func TestSquadPointsMissingStats(t *testing.T) {
	catalog := testCatalog(t)

	sq := squad.FantasySquad{
		Football: squad.FootballSlots{Forward: "p1", Flex: "ghost"},
		F1:       squad.F1Slots{Driver1: "d1", Team: "t1"},
	}

	// No stat line for p1's club, unknown flex id, no race: everything zero.
	got := SquadPoints(sq, simulation.Stats{}, catalog)
	if got.Football != 0 || got.F1 != 0 || got.Total != 0 {
		t.Fatalf("expected zero breakdown, got %+v", got)
	}
}
