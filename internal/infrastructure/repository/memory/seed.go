package memory

import (
	"time"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
	"github.com/wingfantasy/wingfantasy/internal/domain/roster"
)

const (
	ClubLeipzig    = "RB Leipzig"
	ClubSalzburg   = "Red Bull Salzburg"
	ClubNewYork    = "New York Red Bulls"
	ClubBragantino = "Red Bull Bragantino"

	TeamRedBullRacing = "Red Bull Racing"
	TeamVisaCashAppRB = "Visa Cash App RB"
)

func SeedPlayers() []roster.Player {
	return []roster.Player{
		{ID: "p1", Name: "Openda", Role: roster.RoleForward, Club: ClubLeipzig, Cost: 12},
		{ID: "p2", Name: "Olmo", Role: roster.RoleMidfielder, Club: ClubLeipzig, Cost: 11},
		{ID: "p3", Name: "Xavi Simons", Role: roster.RoleMidfielder, Club: ClubLeipzig, Cost: 10},
		{ID: "p4", Name: "Henrichs", Role: roster.RoleDefender, Club: ClubLeipzig, Cost: 8},
		{ID: "p5", Name: "Blaswich", Role: roster.RoleGoalkeeper, Club: ClubLeipzig, Cost: 7},
		{ID: "p7", Name: "Konaté", Role: roster.RoleForward, Club: ClubSalzburg, Cost: 10},
		{ID: "p8", Name: "Šeško", Role: roster.RoleMidfielder, Club: ClubSalzburg, Cost: 9},
		{ID: "p9", Name: "Sucic", Role: roster.RoleMidfielder, Club: ClubSalzburg, Cost: 9},
		{ID: "p10", Name: "Dedić", Role: roster.RoleDefender, Club: ClubSalzburg, Cost: 8},
		{ID: "p11", Name: "Köhn", Role: roster.RoleGoalkeeper, Club: ClubSalzburg, Cost: 7},
		{ID: "p12", Name: "Morgan", Role: roster.RoleMidfielder, Club: ClubNewYork, Cost: 9},
		{ID: "p13", Name: "Barlow", Role: roster.RoleForward, Club: ClubNewYork, Cost: 7},
		{ID: "p14", Name: "Manoel", Role: roster.RoleForward, Club: ClubNewYork, Cost: 8},
		{ID: "p15", Name: "Tolkin", Role: roster.RoleDefender, Club: ClubNewYork, Cost: 7},
		{ID: "p16", Name: "Coronel", Role: roster.RoleGoalkeeper, Club: ClubNewYork, Cost: 6},
		{ID: "p17", Name: "Helinho", Role: roster.RoleMidfielder, Club: ClubBragantino, Cost: 9},
		{ID: "p18", Name: "Sasha", Role: roster.RoleForward, Club: ClubBragantino, Cost: 8},
		{ID: "p19", Name: "Vitinho", Role: roster.RoleMidfielder, Club: ClubBragantino, Cost: 8},
		{ID: "p20", Name: "Luan Cândido", Role: roster.RoleDefender, Club: ClubBragantino, Cost: 7},
		{ID: "p21", Name: "Cleiton", Role: roster.RoleGoalkeeper, Club: ClubBragantino, Cost: 6},
	}
}

func SeedDrivers() []roster.Driver {
	return []roster.Driver{
		{ID: "d1", Name: "Max Verstappen", Team: TeamRedBullRacing, Cost: 16},
		{ID: "d2", Name: "Sergio Pérez", Team: TeamRedBullRacing, Cost: 12},
		{ID: "d3", Name: "Yuki Tsunoda", Team: TeamVisaCashAppRB, Cost: 10},
		{ID: "d4", Name: "Daniel Ricciardo", Team: TeamVisaCashAppRB, Cost: 9},
	}
}

func SeedTeamCards() []roster.TeamCard {
	return []roster.TeamCard{
		{ID: "t1", Name: TeamRedBullRacing, Cost: 18},
		{ID: "t2", Name: TeamVisaCashAppRB, Cost: 12},
	}
}

// SeedCatalog builds the fixed roster catalog every session shares.
func SeedCatalog() (roster.Catalog, error) {
	return roster.NewCatalog(SeedPlayers(), SeedDrivers(), SeedTeamCards())
}

// SeedEvents returns the event pool anchored to now: one upcoming race and
// one upcoming match, plus recently finished events so locked and historical
// states are populated from the first session.
func SeedEvents(now time.Time) []event.Event {
	return []event.Event{
		{
			ID:       "f1-abu-dhabi",
			Title:    "F1 Abu Dhabi Grand Prix",
			Sport:    event.SportFormula1,
			StartAt:  now.Add(120 * time.Minute),
			PickKeys: []event.PickKey{event.PickRaceWinner, event.PickFastestLap, event.PickSafetyCar},
			Race:     &event.RaceMeta{Location: "Yas Marina Circuit"},
		},
		{
			ID:       "f1-austin",
			Title:    "F1 Austin Grand Prix",
			Sport:    event.SportFormula1,
			StartAt:  now.Add(-180 * time.Minute),
			PickKeys: []event.PickKey{event.PickRaceWinner, event.PickFastestLap, event.PickSafetyCar},
			Race:     &event.RaceMeta{Location: "Circuit of the Americas"},
		},
		{
			ID:       "f1-mexico",
			Title:    "F1 Mexico City Grand Prix",
			Sport:    event.SportFormula1,
			StartAt:  now.Add(-7 * 24 * time.Hour),
			PickKeys: []event.PickKey{event.PickRaceWinner, event.PickFastestLap, event.PickSafetyCar},
			Race:     &event.RaceMeta{Location: "Autódromo Hermanos Rodríguez"},
		},
		{
			ID:       "rb-leipzig-bayern",
			Title:    "RB Leipzig vs Bayern Munich",
			Sport:    event.SportFootball,
			StartAt:  now.Add(240 * time.Minute),
			PickKeys: []event.PickKey{event.PickMatchResult, event.PickFirstScorer, event.PickTotalGoals},
			Football: &event.FootballMeta{Opponent: "Bayern Munich", Scorers: []string{"Openda", "Olmo", "Xavi Simons"}},
		},
		{
			ID:       "salzburg-rapid",
			Title:    "Red Bull Salzburg vs Rapid Wien",
			Sport:    event.SportFootball,
			StartAt:  now.Add(-2 * 24 * time.Hour),
			PickKeys: []event.PickKey{event.PickMatchResult, event.PickFirstScorer, event.PickTotalGoals},
			Football: &event.FootballMeta{Opponent: "Rapid Wien", Scorers: []string{"Konaté", "Šeško", "Sucic"}},
		},
		{
			ID:       "nyrb-lafc",
			Title:    "New York Red Bulls vs LAFC",
			Sport:    event.SportFootball,
			StartAt:  now.Add(-14 * 24 * time.Hour),
			PickKeys: []event.PickKey{event.PickMatchResult, event.PickFirstScorer, event.PickTotalGoals},
			Football: &event.FootballMeta{Opponent: "LAFC", Scorers: []string{"Morgan", "Barlow", "Manoel"}},
		},
	}
}
