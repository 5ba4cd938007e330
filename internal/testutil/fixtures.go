package testutil

import (
	"strconv"

	"github.com/preston-bernstein/superliga-data-service/internal/domain"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/standings"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/teams"
)

// SampleStandings returns n Liga I rows in position order, with points descending.
func SampleStandings(n int) []standings.Standing {
	rows := make([]standings.Standing, 0, n)
	for i := 1; i <= n; i++ {
		pos := strconv.Itoa(i)
		rows = append(rows, standings.Standing{
			CountryName:     "Romania",
			LeagueID:        "272",
			LeagueName:      "Superliga",
			TeamID:          domain.Text(strconv.Itoa(100 + i)),
			TeamName:        "Team " + pos,
			OverallPosition: domain.Text(pos),
			OverallPoints:   domain.Text(strconv.Itoa(3 * (n - i + 1))),
		})
	}
	return rows
}

// SampleTeam returns a club with one player per squad type.
func SampleTeam(key, name string) teams.Team {
	players := make([]teams.Player, 0, len(teams.PlayerTypes))
	for _, pt := range teams.PlayerTypes {
		players = append(players, teams.Player{Name: name + " " + pt, Type: pt})
	}
	return teams.Team{
		TeamKey:     domain.Text(key),
		TeamName:    name,
		TeamCountry: "Romania",
		Players:     players,
	}
}
