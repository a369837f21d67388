package squad

import "github.com/wingfantasy/wingfantasy/internal/domain/roster"

// FootballSlots is the football half of a fantasy squad: three fixed-role
// slots plus a flex slot, with an optional captain drawn from the four.
type FootballSlots struct {
	Forward   string
	Midfield  string
	Defense   string
	Flex      string
	CaptainID string
}

// SlotIDs returns the filled slots in scoring order.
func (s FootballSlots) SlotIDs() []string {
	ids := make([]string, 0, 4)
	for _, id := range []string{s.Forward, s.Midfield, s.Defense, s.Flex} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// F1Slots is the motorsport half: two drivers and a team card. The captain is
// independent of the football captain and only ever a driver — team cards are
// not eligible.
type F1Slots struct {
	Driver1   string
	Driver2   string
	Team      string
	CaptainID string
}

// DriverIDs returns the filled driver slots in scoring order.
func (s F1Slots) DriverIDs() []string {
	ids := make([]string, 0, 2)
	for _, id := range []string{s.Driver1, s.Driver2} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// FantasySquad is a user's selection across both sports.
type FantasySquad struct {
	Football FootballSlots
	F1       F1Slots
}

// FootballCost sums the salary of the filled football slots. Unknown ids cost
// nothing rather than erroring; enforcement of the cap is the caller's call.
func (f FantasySquad) FootballCost(catalog roster.Catalog) int {
	total := 0
	for _, id := range f.Football.SlotIDs() {
		if p, ok := catalog.PlayerByID(id); ok {
			total += p.Cost
		}
	}
	return total
}

// F1Cost sums the salary of the filled driver and team slots.
func (f FantasySquad) F1Cost(catalog roster.Catalog) int {
	total := 0
	for _, id := range f.F1.DriverIDs() {
		if d, ok := catalog.DriverByID(id); ok {
			total += d.Cost
		}
	}
	if f.F1.Team != "" {
		if t, ok := catalog.TeamCardByID(f.F1.Team); ok {
			total += t.Cost
		}
	}
	return total
}
