package simulation

// PlayerLine holds one player's simulated match statistics.
type PlayerLine struct {
	PlayerID    string
	Minutes     int
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
}

// MatchStats holds one football match's simulated team and player statistics.
type MatchStats struct {
	MatchID    string
	Club       string
	Won        bool
	CleanSheet bool
	Goals      int
	Players    []PlayerLine
}

// DriverStats holds one driver's simulated race result.
type DriverStats struct {
	DriverID   string
	GridPos    int
	FinishPos  int
	FastestLap bool
	DNF        bool
}

// RaceStats holds the simulated race classification.
type RaceStats struct {
	RaceID  string
	Drivers []DriverStats
}

// Stats is the full output of one week simulation. It is produced atomically:
// either both sides are filled (race nil when none is scheduled) or nothing is.
type Stats struct {
	Matches []MatchStats
	Race    *RaceStats
}
