package teams

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/preston-bernstein/superliga-data-service/internal/domain"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/leagues"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/teams"
	"github.com/preston-bernstein/superliga-data-service/internal/providers/fixture"
)

// Source supplies the raw get_teams records of a league.
type Source interface {
	TeamRecords(ctx context.Context, leagueID string) ([]json.RawMessage, error)
}

// Result is a team list as upstream sent it and whether it came from the built-in fallback.
type Result struct {
	Records  []json.RawMessage
	Fallback bool
}

// Service coordinates team lookups over a Source.
type Service struct {
	source   Source
	fallback func() ([]json.RawMessage, error)
}

// NewService constructs a Service with the provided Source.
func NewService(source Source) *Service {
	return &Service{source: source, fallback: fixture.FallbackTeams}
}

// Teams returns the clubs of a league untouched. An empty Liga I list is replaced by the built-in clubs.
func (s *Service) Teams(ctx context.Context, leagueID string) (Result, error) {
	items, err := s.source.TeamRecords(ctx, leagueID)
	if err != nil {
		return Result{}, err
	}
	if len(items) == 0 && leagueID == leagues.LigaI {
		fb, err := s.fallback()
		if err != nil {
			return Result{}, err
		}
		return Result{Records: fb, Fallback: true}, nil
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return Result{Records: items}, nil
}

// TeamByKey decodes the club of the league whose team_key matches key.
func (s *Service) TeamByKey(ctx context.Context, leagueID, key string) (teams.Team, bool, error) {
	res, err := s.Teams(ctx, leagueID)
	if err != nil {
		return teams.Team{}, false, err
	}
	key = strings.TrimSpace(key)
	for i, raw := range res.Records {
		var head struct {
			TeamKey domain.Text `json:"team_key"`
		}
		if json.Unmarshal(raw, &head) != nil || strings.TrimSpace(head.TeamKey.String()) != key {
			continue
		}
		var team teams.Team
		if err := json.Unmarshal(raw, &team); err != nil {
			return teams.Team{}, false, fmt.Errorf("decode team %d: %w", i, err)
		}
		return team, true, nil
	}
	return teams.Team{}, false, nil
}

// Squad groups a team's players by type in display order. Empty groups and unknown types are left out.
func Squad(team teams.Team) []teams.PositionGroup {
	groups := make([]teams.PositionGroup, 0, len(teams.PlayerTypes))
	for _, pt := range teams.PlayerTypes {
		var players []teams.Player
		for _, p := range team.Players {
			if p.Type == pt {
				players = append(players, p)
			}
		}
		if len(players) == 0 {
			continue
		}
		groups = append(groups, teams.PositionGroup{Position: pt, Label: teams.TypeLabels[pt], Players: players})
	}
	return groups
}
