package leaderboard

import (
	"fmt"
	"strings"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
	"github.com/wingfantasy/wingfantasy/internal/domain/profile"
	"github.com/wingfantasy/wingfantasy/internal/platform/rng"
)

// DemoBoardStreamOffset keeps demo board generation off the outcome
// simulator's streams (football = seed, race = seed+1000) so invoking both in
// one session never correlates.
const DemoBoardStreamOffset = 5000

var (
	demoFirstNames = []string{"Alex", "Sam", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery", "Quinn"}
	demoLastNames  = []string{"Smith", "Johnson", "Brown", "Davis", "Wilson", "Moore", "Taylor", "Anderson", "Thomas", "Jackson"}

	demoWeeks  = []string{"week_2025_1_6", "week_2025_1_13", "week_2025_1_20", "week_2025_1_27"}
	demoMonths = []string{"2024-12", "2025-01"}
)

// Demo point ranges per board type.
const (
	demoWeeklySpread  = 150
	demoWeeklyFloor   = 20
	demoMonthlySpread = 600
	demoMonthlyFloor  = 100
	demoSeasonSpread  = 2000
	demoSeasonFloor   = 500
)

// DemoUsers deterministically generates a synthetic user pool from the fixed
// name and country pools. Three draws per user: first name, last name,
// country.
func DemoUsers(seed int64, count int) []profile.Profile {
	state := rng.Seed(seed)
	users := make([]profile.Profile, 0, count)

	for i := 0; i < count; i++ {
		var first, last, country int
		first, state = rng.NextIntn(state, len(demoFirstNames))
		last, state = rng.NextIntn(state, len(demoLastNames))
		country, state = rng.NextIntn(state, len(profile.Countries))

		firstName := demoFirstNames[first]
		users = append(users, profile.Profile{
			UserID:  fmt.Sprintf("demo_user_%d", i),
			Name:    firstName + " " + demoLastNames[last],
			Country: profile.Countries[country],
			Handle:  "@" + strings.ToLower(firstName) + fmt.Sprint(i),
		})
	}

	return users
}

// DemoData fills weekly, monthly and season boards with synthetic points for
// the given users on the seed+5000 stream. Draw order is fixed: per sport,
// the weekly boards then the monthly boards, each user in pool order; the
// season board last.
func DemoData(seed int64, users []profile.Profile) *Data {
	state := rng.Seed(seed + DemoBoardStreamOffset)
	data := NewData()

	for _, sport := range []event.Sport{event.SportFootball, event.SportFormula1} {
		for _, week := range demoWeeks {
			key := BoardKey{Sport: sport, Period: week}
			board := make([]Entry, 0, len(users))
			for _, user := range users {
				var n int
				n, state = rng.NextIntn(state, demoWeeklySpread)
				board = append(board, Entry{
					UserID:  user.UserID,
					Name:    user.Name,
					Country: user.Country,
					Points:  n + demoWeeklyFloor,
				})
			}
			data.Weekly[key] = sortedCopy(board)
		}
		for _, month := range demoMonths {
			key := BoardKey{Sport: sport, Period: month}
			board := make([]Entry, 0, len(users))
			for _, user := range users {
				var n int
				n, state = rng.NextIntn(state, demoMonthlySpread)
				board = append(board, Entry{
					UserID:  user.UserID,
					Name:    user.Name,
					Country: user.Country,
					Points:  n + demoMonthlyFloor,
				})
			}
			data.Monthly[key] = sortedCopy(board)
		}
	}

	season := make([]Entry, 0, len(users))
	for _, user := range users {
		var n int
		n, state = rng.NextIntn(state, demoSeasonSpread)
		season = append(season, Entry{
			UserID:  user.UserID,
			Name:    user.Name,
			Country: user.Country,
			Points:  n + demoSeasonFloor,
		})
	}
	data.Season = sortedCopy(season)

	return data
}

func sortedCopy(board []Entry) []Entry {
	out := append([]Entry(nil), board...)
	sortDescending(out)
	return out
}
