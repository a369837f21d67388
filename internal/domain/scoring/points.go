// Package scoring converts simulated statistics and a fantasy squad into
// point totals. Everything here is a pure function: unknown ids and missing
// stat lines contribute zero instead of erroring.
package scoring

import (
	"math"

	"github.com/wingfantasy/wingfantasy/internal/domain/roster"
	"github.com/wingfantasy/wingfantasy/internal/domain/simulation"
	"github.com/wingfantasy/wingfantasy/internal/domain/squad"
)

// Breakdown is the scored result of one week for one squad.
type Breakdown struct {
	Football int
	F1       int
	Total    int
}

// Goal values per role. Defenders score more per goal, reflecting rarity.
var goalPointsByRole = map[roster.Role]int{
	roster.RoleForward:    5,
	roster.RoleMidfielder: 6,
	roster.RoleDefender:   7,
}

// finishPoints maps race classification to points, 1st through 10th.
// Positions 11+ (including the DNF sentinel) score zero.
var finishPoints = map[int]int{
	1: 25, 2: 18, 3: 15, 4: 12, 5: 10,
	6: 8, 7: 6, 8: 4, 9: 2, 10: 1,
}

const (
	minutesBonusThreshold = 60
	cleanSheetBonus       = 4
	teamWinBonus          = 2
	assistPoints          = 3
	yellowCardPenalty     = 1
	redCardPenalty        = 3
	dnfPenalty            = 5
	fastestLapBonus       = 1
	teamFastestLapBonus   = 2
	maxOvertakeBonus      = 5
	captainMultiplier     = 1.5
)

// PlayerPoints scores one football player's match line. The clean-sheet bonus
// only applies to goalkeepers and defenders who played an hour or more.
func PlayerPoints(p roster.Player, line simulation.PlayerLine, teamWon, cleanSheet bool) int {
	points := 0
	if line.Minutes >= minutesBonusThreshold {
		points++
	}
	points += line.Goals * goalPointsByRole[p.Role]
	points += line.Assists * assistPoints
	if (p.Role == roster.RoleGoalkeeper || p.Role == roster.RoleDefender) &&
		cleanSheet && line.Minutes >= minutesBonusThreshold {
		points += cleanSheetBonus
	}
	if teamWon {
		points += teamWinBonus
	}
	points -= line.YellowCards * yellowCardPenalty
	points -= line.RedCards * redCardPenalty
	return points
}

// DriverPoints scores one driver's race result. A DNF is a flat penalty and
// nothing else; otherwise classification points plus fastest lap plus the
// capped overtake bonus.
func DriverPoints(stats simulation.DriverStats) int {
	if stats.DNF {
		return -dnfPenalty
	}

	points := finishPoints[stats.FinishPos]
	if stats.FastestLap {
		points += fastestLapBonus
	}
	gained := stats.GridPos - stats.FinishPos
	if gained > 0 {
		if gained > maxOvertakeBonus {
			gained = maxOvertakeBonus
		}
		points += gained
	}
	return points
}

// TeamCardPoints scores a constructor card: the sum of its drivers'
// classification points (no overtake bonus), plus a flat bonus if any of them
// set the fastest lap.
func TeamCardPoints(card roster.TeamCard, race simulation.RaceStats, catalog roster.Catalog) int {
	points := 0
	hasFastestLap := false
	for _, d := range catalog.DriversByTeam(card.Name) {
		for _, stats := range race.Drivers {
			if stats.DriverID != d.ID {
				continue
			}
			points += finishPoints[stats.FinishPos]
			if stats.FastestLap {
				hasFastestLap = true
			}
		}
	}
	if hasFastestLap {
		points += teamFastestLapBonus
	}
	return points
}

// ApplyCaptainMultiplier multiplies a raw point total by 1.5 and floors the
// product toward negative infinity, so a -5 performer becomes -8. The
// negative rounding direction matches the reference behavior and is pinned
// by tests.
func ApplyCaptainMultiplier(points int) int {
	return int(math.Floor(float64(points) * captainMultiplier))
}

// SquadPoints scores a full squad against the week's simulated stats. A
// missing sport side (no race, no matches) contributes zero. The captain
// multiplier applies independently per sport; team cards are never captain.
func SquadPoints(sq squad.FantasySquad, stats simulation.Stats, catalog roster.Catalog) Breakdown {
	football := 0
	for _, playerID := range sq.Football.SlotIDs() {
		player, ok := catalog.PlayerByID(playerID)
		if !ok {
			continue
		}
		for _, match := range stats.Matches {
			if match.Club != player.Club {
				continue
			}
			line, ok := playerLine(match, playerID)
			if !ok {
				continue
			}
			points := PlayerPoints(player, line, match.Won, match.CleanSheet)
			if playerID == sq.Football.CaptainID {
				points = ApplyCaptainMultiplier(points)
			}
			football += points
		}
	}

	f1 := 0
	if stats.Race != nil {
		for _, driverID := range sq.F1.DriverIDs() {
			ds, ok := driverStats(*stats.Race, driverID)
			if !ok {
				continue
			}
			points := DriverPoints(ds)
			if driverID == sq.F1.CaptainID {
				points = ApplyCaptainMultiplier(points)
			}
			f1 += points
		}
		if sq.F1.Team != "" {
			if card, ok := catalog.TeamCardByID(sq.F1.Team); ok {
				f1 += TeamCardPoints(card, *stats.Race, catalog)
			}
		}
	}

	return Breakdown{
		Football: football,
		F1:       f1,
		Total:    football + f1,
	}
}

func playerLine(match simulation.MatchStats, playerID string) (simulation.PlayerLine, bool) {
	for _, line := range match.Players {
		if line.PlayerID == playerID {
			return line, true
		}
	}
	return simulation.PlayerLine{}, false
}

func driverStats(race simulation.RaceStats, driverID string) (simulation.DriverStats, bool) {
	for _, stats := range race.Drivers {
		if stats.DriverID == driverID {
			return stats, true
		}
	}
	return simulation.DriverStats{}, false
}
