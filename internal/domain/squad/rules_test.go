package squad

import (
	"errors"
	"testing"

	"github.com/wingfantasy/wingfantasy/internal/domain/roster"
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
		},
		[]roster.TeamCard{
			{ID: "t1", Name: "Red Bull Racing", Cost: 18},
		},
	)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return catalog
}

func validSquad() FantasySquad {
	return FantasySquad{
		Football: FootballSlots{
			Forward:   "p1",
			Midfield:  "p2",
			Defense:   "p4",
			Flex:      "p5",
			CaptainID: "p1",
		},
		F1: F1Slots{
			Driver1:   "d1",
			Driver2:   "d2",
			CaptainID: "d1",
		},
	}
}

func TestValidate(t *testing.T) {
	catalog := testCatalog(t)
	rules := DefaultRules()

	tests := []struct {
		name      string
		mutate    func(*FantasySquad, *Rules)
		targetErr error
	}{
		{
			name:   "valid squad",
			mutate: func(_ *FantasySquad, _ *Rules) {},
		},
		{
			name: "football cap exceeded",
			mutate: func(_ *FantasySquad, cfg *Rules) {
				cfg.FootballCap = 20
			},
			targetErr: ErrExceededSalaryCap,
		},
		{
			name: "f1 cap exceeded",
			mutate: func(s *FantasySquad, cfg *Rules) {
				s.F1.Team = "t1"
				cfg.F1Cap = 30
			},
			targetErr: ErrExceededSalaryCap,
		},
		{
			name: "unknown player",
			mutate: func(s *FantasySquad, _ *Rules) {
				s.Football.Flex = "nope"
			},
			targetErr: ErrUnknownSelection,
		},
		{
			name: "unknown team card",
			mutate: func(s *FantasySquad, _ *Rules) {
				s.F1.Team = "nope"
			},
			targetErr: ErrUnknownSelection,
		},
		{
			name: "captain outside squad",
			mutate: func(s *FantasySquad, _ *Rules) {
				s.Football.CaptainID = "p99"
			},
			targetErr: ErrInvalidCaptain,
		},
		{
			name: "team card as f1 captain",
			mutate: func(s *FantasySquad, _ *Rules) {
				s.F1.Team = "t1"
				s.F1.CaptainID = "t1"
			},
			targetErr: ErrInvalidCaptain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSquad()
			cfg := rules
			tt.mutate(&s, &cfg)

			err := Validate(s, catalog, cfg)
			if tt.targetErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.targetErr) {
				t.Fatalf("expected error %v, got %v", tt.targetErr, err)
			}
		})
	}
}

func TestCostComputation(t *testing.T) {
	catalog := testCatalog(t)
	s := validSquad()
	s.F1.Team = "t1"

	if got := s.FootballCost(catalog); got != 38 {
		t.Fatalf("football cost: got %d want 38", got)
	}
	if got := s.F1Cost(catalog); got != 46 {
		t.Fatalf("f1 cost: got %d want 46", got)
	}

	partial := FantasySquad{Football: FootballSlots{Forward: "p1"}}
	if got := partial.FootballCost(catalog); got != 12 {
		t.Fatalf("partial football cost: got %d want 12", got)
	}
	if got := partial.F1Cost(catalog); got != 0 {
		t.Fatalf("empty f1 cost: got %d want 0", got)
	}
}
