package standings

import (
	"context"
	"errors"

	"github.com/preston-bernstein/superliga-data-service/internal/domain/leagues"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/standings"
)

// ErrUnknownLeague is returned for leagues outside the tracked Romanian pyramid.
var ErrUnknownLeague = errors.New("unknown league")

// Source supplies raw standings.
type Source interface {
	Standings(ctx context.Context, leagueID string) ([]standings.Standing, error)
}

// Service derives display tables from raw standings.
type Service struct {
	source Source
}

// NewService constructs a Service over source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Table builds the grouped, banded table and leaders preview for a tracked league.
func (s *Service) Table(ctx context.Context, leagueID string) (standings.Table, error) {
	ref, ok := leagues.Lookup(leagueID)
	if !ok {
		return standings.Table{}, ErrUnknownLeague
	}

	rows, err := s.source.Standings(ctx, leagueID)
	if err != nil {
		return standings.Table{}, err
	}

	groups := Group(leagueID, rows)
	Bands(leagueID, groups, len(rows))

	name := ref.Name
	if len(rows) > 0 && rows[0].LeagueName != "" {
		name = rows[0].LeagueName
	}
	if groups == nil {
		groups = []standings.Group{}
	}
	return standings.Table{
		LeagueID:   leagueID,
		LeagueName: name,
		Groups:     groups,
		Top:        Top(rows, TopCount),
	}, nil
}
