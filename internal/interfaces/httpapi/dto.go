package httpapi

import (
	"time"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
	"github.com/wingfantasy/wingfantasy/internal/domain/leaderboard"
	"github.com/wingfantasy/wingfantasy/internal/domain/profile"
	"github.com/wingfantasy/wingfantasy/internal/domain/session"
	"github.com/wingfantasy/wingfantasy/internal/domain/simulation"
	"github.com/wingfantasy/wingfantasy/internal/domain/slate"
	"github.com/wingfantasy/wingfantasy/internal/domain/squad"
	"github.com/wingfantasy/wingfantasy/internal/usecase"
)

type makePickRequest struct {
	EventID string `json:"eventId" validate:"required"`
	Key     string `json:"key" validate:"required"`
	Value   string `json:"value" validate:"required"`
}

type footballSlotsPayload struct {
	Forward   string `json:"fwd,omitempty"`
	Midfield  string `json:"mid,omitempty"`
	Defense   string `json:"def,omitempty"`
	Flex      string `json:"flex,omitempty"`
	CaptainID string `json:"captainId,omitempty"`
}

type f1SlotsPayload struct {
	Driver1   string `json:"driver1,omitempty"`
	Driver2   string `json:"driver2,omitempty"`
	Team      string `json:"team,omitempty"`
	CaptainID string `json:"captainId,omitempty"`
}

type squadRequest struct {
	Football footballSlotsPayload `json:"football"`
	F1       f1SlotsPayload       `json:"f1"`
}

type filtersRequest struct {
	Sport     string `json:"sport" validate:"required"`
	Timeframe string `json:"timeframe" validate:"required"`
	Scope     string `json:"scope" validate:"required"`
	Country   string `json:"country,omitempty"`
}

type countryRequest struct {
	Country string `json:"country" validate:"required"`
}

type eventDTO struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Sport    string           `json:"sport"`
	StartAt  time.Time        `json:"startTime"`
	PickKeys []string         `json:"pickKeys"`
	IsLocked bool             `json:"isLocked"`
	Football *footballMetaDTO `json:"footballMeta,omitempty"`
	Race     *raceMetaDTO     `json:"raceMeta,omitempty"`
}

type footballMetaDTO struct {
	Opponent string   `json:"opponent"`
	Scorers  []string `json:"scorers"`
}

type raceMetaDTO struct {
	Location string `json:"location"`
}

func eventToDTO(e event.Event, now time.Time) eventDTO {
	keys := make([]string, 0, len(e.PickKeys))
	for _, k := range e.PickKeys {
		keys = append(keys, string(k))
	}

	dto := eventDTO{
		ID:       e.ID,
		Title:    e.Title,
		Sport:    string(e.Sport),
		StartAt:  e.StartAt,
		PickKeys: keys,
		IsLocked: e.Locked(now),
	}
	if e.Football != nil {
		dto.Football = &footballMetaDTO{Opponent: e.Football.Opponent, Scorers: e.Football.Scorers}
	}
	if e.Race != nil {
		dto.Race = &raceMetaDTO{Location: e.Race.Location}
	}
	return dto
}

type slateDTO struct {
	WeekID  string     `json:"weekId"`
	LockAt  time.Time  `json:"lockAt"`
	Matches []matchDTO `json:"matches"`
	Race    *raceDTO   `json:"race,omitempty"`
}

type matchDTO struct {
	ID       string    `json:"id"`
	Club     string    `json:"club"`
	Opponent string    `json:"opponent"`
	StartAt  time.Time `json:"startTime"`
}

type raceDTO struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	StartAt time.Time `json:"startTime"`
}

func slateToDTO(s *slate.WeeklySlate) *slateDTO {
	if s == nil {
		return nil
	}

	matches := make([]matchDTO, 0, len(s.Matches))
	for _, m := range s.Matches {
		matches = append(matches, matchDTO{ID: m.ID, Club: m.Club, Opponent: m.Opponent, StartAt: m.StartAt})
	}

	dto := &slateDTO{
		WeekID:  s.WeekID,
		LockAt:  s.LockAt,
		Matches: matches,
	}
	if s.Race != nil {
		dto.Race = &raceDTO{ID: s.Race.ID, Name: s.Race.Name, StartAt: s.Race.StartAt}
	}
	return dto
}

type passportDTO struct {
	Watched   int    `json:"watched"`
	Predicted int    `json:"predicted"`
	Created   int    `json:"created"`
	Badge     string `json:"badge,omitempty"`
}

func passportToDTO(p session.Passport) passportDTO {
	return passportDTO{Watched: p.Watched, Predicted: p.Predicted, Created: p.Created, Badge: p.Badge}
}

type weekRecordDTO struct {
	WeekID string `json:"weekId"`
	Points int    `json:"points"`
}

type filtersDTO struct {
	Sport     string `json:"sport"`
	Timeframe string `json:"timeframe"`
	Scope     string `json:"scope"`
	Country   string `json:"country"`
}

func filtersToDTO(f session.Filters) filtersDTO {
	return filtersDTO{
		Sport:     string(f.Sport),
		Timeframe: string(f.Timeframe),
		Scope:     string(f.Scope),
		Country:   f.Country,
	}
}

type pickDTO struct {
	EventID string            `json:"eventId"`
	Picks   map[string]string `json:"picks"`
}

type sessionDTO struct {
	Profile      profileDTO                   `json:"profile"`
	Picks        []pickDTO                    `json:"picks"`
	Results      map[string]map[string]string `json:"results"`
	Points       map[string]int               `json:"points"`
	Passport     passportDTO                  `json:"passport"`
	StreakDays   int                          `json:"streakDays"`
	WingTokens   int                          `json:"wingTokens"`
	Squad        squadRequest                 `json:"fantasySquad"`
	Slate        *slateDTO                    `json:"weeklySlate,omitempty"`
	WeeklyPoints int                          `json:"weeklyPoints"`
	SeasonPoints int                          `json:"seasonPoints"`
	WeekHistory  []weekRecordDTO              `json:"weekHistory"`
	DemoMode     bool                         `json:"demoMode"`
	Filters      filtersDTO                   `json:"lastLeaderboardFilters"`
}

func sessionToDTO(state *session.State, user profile.Profile) sessionDTO {
	picks := make([]pickDTO, 0, len(state.Picks))
	for _, p := range state.Picks {
		picks = append(picks, pickDTO{EventID: p.EventID, Picks: outcomeToDTO(p.Picks)})
	}

	results := make(map[string]map[string]string, len(state.Results))
	for id, outcome := range state.Results {
		results[id] = outcomeToDTO(outcome)
	}

	history := make([]weekRecordDTO, 0, len(state.WeekHistory))
	for _, rec := range state.WeekHistory {
		history = append(history, weekRecordDTO{WeekID: rec.WeekID, Points: rec.Points})
	}

	return sessionDTO{
		Profile:      profileToDTO(user),
		Picks:        picks,
		Results:      results,
		Points:       state.Points,
		Passport:     passportToDTO(state.Passport),
		StreakDays:   state.StreakDays,
		WingTokens:   state.WingTokens,
		Squad:        squadToPayload(state.Squad),
		Slate:        slateToDTO(state.Slate),
		WeeklyPoints: state.WeeklyPoints,
		SeasonPoints: state.SeasonPoints,
		WeekHistory:  history,
		DemoMode:     state.DemoMode,
		Filters:      filtersToDTO(state.Filters),
	}
}

func squadToPayload(sq squad.FantasySquad) squadRequest {
	return squadRequest{
		Football: footballSlotsPayload{
			Forward:   sq.Football.Forward,
			Midfield:  sq.Football.Midfield,
			Defense:   sq.Football.Defense,
			Flex:      sq.Football.Flex,
			CaptainID: sq.Football.CaptainID,
		},
		F1: f1SlotsPayload{
			Driver1:   sq.F1.Driver1,
			Driver2:   sq.F1.Driver2,
			Team:      sq.F1.Team,
			CaptainID: sq.F1.CaptainID,
		},
	}
}

func outcomeToDTO(outcome event.Outcome) map[string]string {
	out := make(map[string]string, len(outcome))
	for k, v := range outcome {
		out[string(k)] = v
	}
	return out
}

type revealDTO struct {
	EventID    string      `json:"eventId"`
	Points     int         `json:"points"`
	StreakDays int         `json:"streakDays"`
	WingTokens int         `json:"wingTokens"`
	Passport   passportDTO `json:"passport"`
}

type breakdownDTO struct {
	Football int `json:"football"`
	F1       int `json:"f1"`
	Total    int `json:"total"`
}

type profileDTO struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Handle  string `json:"handle"`
}

func profileToDTO(p profile.Profile) profileDTO {
	return profileDTO{UserID: p.UserID, Name: p.Name, Country: p.Country, Handle: p.Handle}
}

type entryDTO struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Points  int    `json:"points"`
}

type boardViewDTO struct {
	Entries   []entryDTO `json:"entries"`
	UserRank  int        `json:"userRank,omitempty"`
	UserEntry *entryDTO  `json:"userEntry,omitempty"`
}

type leaderboardsDTO struct {
	Filters filtersDTO   `json:"filters"`
	Sport   boardViewDTO `json:"sportBoard"`
	Season  boardViewDTO `json:"seasonBoard"`
}

func boardViewToDTO(view usecase.BoardView) boardViewDTO {
	entries := make([]entryDTO, 0, len(view.Entries))
	for _, e := range view.Entries {
		entries = append(entries, entryToDTO(e))
	}

	dto := boardViewDTO{Entries: entries, UserRank: view.UserRank}
	if view.UserEntry != nil {
		entry := entryToDTO(*view.UserEntry)
		dto.UserEntry = &entry
	}
	return dto
}

func entryToDTO(e leaderboard.Entry) entryDTO {
	return entryDTO{UserID: e.UserID, Name: e.Name, Country: e.Country, Points: e.Points}
}

type playerLineDTO struct {
	PlayerID    string `json:"playerId"`
	Minutes     int    `json:"minutesPlayed"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	YellowCards int    `json:"yellowCards"`
	RedCards    int    `json:"redCards"`
}

type matchStatsDTO struct {
	MatchID    string          `json:"matchId"`
	Club       string          `json:"club"`
	Won        bool            `json:"won"`
	CleanSheet bool            `json:"cleanSheet"`
	Goals      int             `json:"goals"`
	Players    []playerLineDTO `json:"players"`
}

type driverStatsDTO struct {
	DriverID   string `json:"driverId"`
	GridPos    int    `json:"gridPos"`
	FinishPos  int    `json:"finishPos"`
	FastestLap bool   `json:"fastestLap"`
	DNF        bool   `json:"dnf"`
}

type raceStatsDTO struct {
	RaceID  string           `json:"raceId"`
	Drivers []driverStatsDTO `json:"drivers"`
}

type statsDTO struct {
	Matches []matchStatsDTO `json:"footballMatches"`
	Race    *raceStatsDTO   `json:"f1Race,omitempty"`
}

func statsToDTO(stats *simulation.Stats) *statsDTO {
	if stats == nil {
		return nil
	}

	matches := make([]matchStatsDTO, 0, len(stats.Matches))
	for _, m := range stats.Matches {
		lines := make([]playerLineDTO, 0, len(m.Players))
		for _, p := range m.Players {
			lines = append(lines, playerLineDTO{
				PlayerID:    p.PlayerID,
				Minutes:     p.Minutes,
				Goals:       p.Goals,
				Assists:     p.Assists,
				YellowCards: p.YellowCards,
				RedCards:    p.RedCards,
			})
		}
		matches = append(matches, matchStatsDTO{
			MatchID:    m.MatchID,
			Club:       m.Club,
			Won:        m.Won,
			CleanSheet: m.CleanSheet,
			Goals:      m.Goals,
			Players:    lines,
		})
	}

	dto := &statsDTO{Matches: matches}
	if stats.Race != nil {
		drivers := make([]driverStatsDTO, 0, len(stats.Race.Drivers))
		for _, d := range stats.Race.Drivers {
			drivers = append(drivers, driverStatsDTO{
				DriverID:   d.DriverID,
				GridPos:    d.GridPos,
				FinishPos:  d.FinishPos,
				FastestLap: d.FastestLap,
				DNF:        d.DNF,
			})
		}
		dto.Race = &raceStatsDTO{RaceID: stats.Race.RaceID, Drivers: drivers}
	}
	return dto
}
