package slate

import "time"

// Match is one football fixture inside the weekly window.
type Match struct {
	ID       string
	Club     string
	Opponent string
	StartAt  time.Time
}

// Race is the week's single motorsport event, when one is scheduled.
type Race struct {
	ID      string
	Name    string
	StartAt time.Time
}

// WeeklySlate is the set of events in the current scheduling week plus the
// pick lock deadline. It is recomputed whole, never partially mutated.
type WeeklySlate struct {
	WeekID  string
	LockAt  time.Time
	Matches []Match
	Race    *Race
}

// Locked reports whether the slate's pick deadline has passed.
func (s WeeklySlate) Locked(now time.Time) bool {
	return s.LockAt.Before(now)
}
