package squad

import (
	"errors"
	"fmt"

	"github.com/wingfantasy/wingfantasy/internal/domain/roster"
)

var (
	ErrExceededSalaryCap = errors.New("salary cap exceeded")
	ErrUnknownSelection  = errors.New("unknown selection id")
	ErrInvalidCaptain    = errors.New("captain is not a squad selection")
)

// Rules stores squad validation parameters. The engine itself only computes
// cost; these checks run at the presentation boundary.
type Rules struct {
	FootballCap int
	F1Cap       int
}

func DefaultRules() Rules {
	return Rules{
		FootballCap: 40,
		F1Cap:       40,
	}
}

// Validate checks selection ids, captain eligibility, and both salary caps.
func Validate(f FantasySquad, catalog roster.Catalog, rules Rules) error {
	for _, id := range f.Football.SlotIDs() {
		if _, ok := catalog.PlayerByID(id); !ok {
			return fmt.Errorf("%w: player %s", ErrUnknownSelection, id)
		}
	}
	for _, id := range f.F1.DriverIDs() {
		if _, ok := catalog.DriverByID(id); !ok {
			return fmt.Errorf("%w: driver %s", ErrUnknownSelection, id)
		}
	}
	if f.F1.Team != "" {
		if _, ok := catalog.TeamCardByID(f.F1.Team); !ok {
			return fmt.Errorf("%w: team card %s", ErrUnknownSelection, f.F1.Team)
		}
	}

	if captain := f.Football.CaptainID; captain != "" && !contains(f.Football.SlotIDs(), captain) {
		return fmt.Errorf("%w: football captain %s", ErrInvalidCaptain, captain)
	}
	if captain := f.F1.CaptainID; captain != "" && !contains(f.F1.DriverIDs(), captain) {
		return fmt.Errorf("%w: f1 captain %s", ErrInvalidCaptain, captain)
	}

	if used := f.FootballCost(catalog); used > rules.FootballCap {
		return fmt.Errorf("%w: football cap=%d used=%d", ErrExceededSalaryCap, rules.FootballCap, used)
	}
	if used := f.F1Cost(catalog); used > rules.F1Cap {
		return fmt.Errorf("%w: f1 cap=%d used=%d", ErrExceededSalaryCap, rules.F1Cap, used)
	}

	return nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
