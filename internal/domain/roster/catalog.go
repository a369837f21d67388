package roster

import "fmt"

// Catalog is the immutable reference pool of players, drivers and team cards.
// It is loaded once at startup and passed by value to the simulation and
// scoring code. Slice order is significant: the simulator consumes RNG draws
// in catalog order, and a driver's grid position is its catalog index + 1.
type Catalog struct {
	players []Player
	drivers []Driver
	teams   []TeamCard

	playerByID  map[string]Player
	driverByID  map[string]Driver
	teamByID    map[string]TeamCard
	driverIndex map[string]int
}

func NewCatalog(players []Player, drivers []Driver, teams []TeamCard) (Catalog, error) {
	c := Catalog{
		players:     append([]Player(nil), players...),
		drivers:     append([]Driver(nil), drivers...),
		teams:       append([]TeamCard(nil), teams...),
		playerByID:  make(map[string]Player, len(players)),
		driverByID:  make(map[string]Driver, len(drivers)),
		teamByID:    make(map[string]TeamCard, len(teams)),
		driverIndex: make(map[string]int, len(drivers)),
	}

	for _, p := range c.players {
		if err := p.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("catalog player %s: %w", p.ID, err)
		}
		if _, exists := c.playerByID[p.ID]; exists {
			return Catalog{}, fmt.Errorf("duplicate player id in catalog: %s", p.ID)
		}
		c.playerByID[p.ID] = p
	}
	for idx, d := range c.drivers {
		if err := d.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("catalog driver %s: %w", d.ID, err)
		}
		if _, exists := c.driverByID[d.ID]; exists {
			return Catalog{}, fmt.Errorf("duplicate driver id in catalog: %s", d.ID)
		}
		c.driverByID[d.ID] = d
		c.driverIndex[d.ID] = idx
	}
	for _, t := range c.teams {
		if err := t.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("catalog team card %s: %w", t.ID, err)
		}
		if _, exists := c.teamByID[t.ID]; exists {
			return Catalog{}, fmt.Errorf("duplicate team card id in catalog: %s", t.ID)
		}
		c.teamByID[t.ID] = t
	}

	return c, nil
}

func (c Catalog) Players() []Player {
	return append([]Player(nil), c.players...)
}

func (c Catalog) Drivers() []Driver {
	return append([]Driver(nil), c.drivers...)
}

func (c Catalog) TeamCards() []TeamCard {
	return append([]TeamCard(nil), c.teams...)
}

func (c Catalog) PlayerByID(id string) (Player, bool) {
	p, ok := c.playerByID[id]
	return p, ok
}

func (c Catalog) DriverByID(id string) (Driver, bool) {
	d, ok := c.driverByID[id]
	return d, ok
}

func (c Catalog) TeamCardByID(id string) (TeamCard, bool) {
	t, ok := c.teamByID[id]
	return t, ok
}

// PlayersByClub returns the club's players preserving catalog order.
func (c Catalog) PlayersByClub(club string) []Player {
	out := make([]Player, 0, 8)
	for _, p := range c.players {
		if p.Club == club {
			out = append(out, p)
		}
	}
	return out
}

// DriversByTeam returns the team's drivers preserving catalog order.
func (c Catalog) DriversByTeam(team string) []Driver {
	out := make([]Driver, 0, 2)
	for _, d := range c.drivers {
		if d.Team == team {
			out = append(out, d)
		}
	}
	return out
}

// GridPosition reports the driver's fixed starting position, catalog index + 1.
func (c Catalog) GridPosition(driverID string) (int, bool) {
	idx, ok := c.driverIndex[driverID]
	if !ok {
		return 0, false
	}
	return idx + 1, true
}
