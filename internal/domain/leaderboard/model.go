package leaderboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
	"github.com/wingfantasy/wingfantasy/internal/domain/profile"
)

// BoardKey addresses one ranked board: a sport plus a period identifier
// (week id for weekly boards, "YYYY-MM" for monthly ones).
type BoardKey struct {
	Sport  event.Sport
	Period string
}

const boardKeySeparator = "|"

// MarshalText encodes the key as "<sport>|<period>" so board maps survive
// JSON snapshots.
func (k BoardKey) MarshalText() ([]byte, error) {
	if strings.Contains(string(k.Sport), boardKeySeparator) {
		return nil, fmt.Errorf("board key sport contains separator: %s", k.Sport)
	}
	return []byte(string(k.Sport) + boardKeySeparator + k.Period), nil
}

func (k *BoardKey) UnmarshalText(text []byte) error {
	sport, period, ok := strings.Cut(string(text), boardKeySeparator)
	if !ok {
		return fmt.Errorf("malformed board key: %s", text)
	}
	if _, valid := event.AllSports[event.Sport(sport)]; !valid {
		return fmt.Errorf("board key has invalid sport: %s", sport)
	}

	k.Sport = event.Sport(sport)
	k.Period = period
	return nil
}

// Entry is one user's cumulative score on a board. Points only ever
// accumulate; they are never overwritten.
type Entry struct {
	UserID  string
	Name    string
	Country string
	Points  int
}

// Data holds every board for a session: weekly and monthly boards per sport,
// and the single global season board.
type Data struct {
	Weekly  map[BoardKey][]Entry
	Monthly map[BoardKey][]Entry
	Season  []Entry
}

func NewData() *Data {
	return &Data{
		Weekly:  make(map[BoardKey][]Entry),
		Monthly: make(map[BoardKey][]Entry),
	}
}

// PostWeekly adds a point delta for the user to a weekly sport board. Deltas
// of zero or less are dropped without creating an entry: a user who did not
// participate in a sport that week must not appear on its board.
func (d *Data) PostWeekly(key BoardKey, user profile.Profile, delta int) {
	if delta <= 0 {
		return
	}
	d.Weekly[key] = accumulate(d.Weekly[key], user, delta)
}

// PostMonthly behaves like PostWeekly for monthly sport boards.
func (d *Data) PostMonthly(key BoardKey, user profile.Profile, delta int) {
	if delta <= 0 {
		return
	}
	d.Monthly[key] = accumulate(d.Monthly[key], user, delta)
}

// PostSeason adds the combined total to the global season board. Unlike the
// sport boards it accepts any delta, sign included.
func (d *Data) PostSeason(user profile.Profile, delta int) {
	d.Season = accumulate(d.Season, user, delta)
}

// accumulate locates or creates the user's entry, adds the delta, and
// re-sorts descending by points. The sort is stable: ties keep their
// insertion/update order.
func accumulate(board []Entry, user profile.Profile, delta int) []Entry {
	found := false
	for i := range board {
		if board[i].UserID == user.UserID {
			board[i].Points += delta
			found = true
			break
		}
	}
	if !found {
		board = append(board, Entry{
			UserID:  user.UserID,
			Name:    user.Name,
			Country: user.Country,
			Points:  delta,
		})
	}

	sortDescending(board)
	return board
}

func sortDescending(board []Entry) {
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Points > board[j].Points
	})
}
