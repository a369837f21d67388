package roster

import "fmt"

// Role represents football position categories used in scoring rules.
type Role string

const (
	RoleForward    Role = "FWD"
	RoleMidfielder Role = "MID"
	RoleDefender   Role = "DEF"
	RoleGoalkeeper Role = "GK"
)

var AllRoles = map[Role]struct{}{
	RoleForward:    {},
	RoleMidfielder: {},
	RoleDefender:   {},
	RoleGoalkeeper: {},
}

// Player is a selectable football athlete in the fantasy pool.
type Player struct {
	ID   string
	Name string
	Role Role
	Club string
	Cost int
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if p.Club == "" {
		return fmt.Errorf("player club is required")
	}
	if p.Cost <= 0 {
		return fmt.Errorf("player cost must be greater than zero")
	}

	return nil
}

// Driver is a selectable race driver in the fantasy pool.
type Driver struct {
	ID   string
	Name string
	Team string
	Cost int
}

func (d Driver) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("driver id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("driver name is required")
	}
	if d.Team == "" {
		return fmt.Errorf("driver team is required")
	}
	if d.Cost <= 0 {
		return fmt.Errorf("driver cost must be greater than zero")
	}

	return nil
}

// TeamCard is a selectable constructor card covering all of a team's drivers.
type TeamCard struct {
	ID   string
	Name string
	Cost int
}

func (t TeamCard) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team card id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team card name is required")
	}
	if t.Cost <= 0 {
		return fmt.Errorf("team card cost must be greater than zero")
	}

	return nil
}
