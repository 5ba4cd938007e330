package football

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/superliga-data-service/internal/cache"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/leagues"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/matches"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/standings"
	"github.com/preston-bernstein/superliga-data-service/internal/providers"
	"github.com/preston-bernstein/superliga-data-service/internal/providers/apifootball"
	"github.com/preston-bernstein/superliga-data-service/internal/timeutil"
)

// ErrMissingAction is returned by Query when no action parameter is given.
var ErrMissingAction = errors.New("missing action parameter")

// Service is the cached read path to the sports API.
type Service struct {
	provider providers.FootballProvider
	loader   *cache.Loader
	ttl      apifootball.TTLPolicy
	now      func() time.Time
}

// NewService wires a provider behind the loader. A nil loader disables caching.
func NewService(provider providers.FootballProvider, loader *cache.Loader, ttl apifootball.TTLPolicy) *Service {
	if loader == nil {
		loader = cache.NewLoader(nil, nil, nil)
	}
	return &Service{provider: provider, loader: loader, ttl: ttl, now: time.Now}
}

// Query runs the action named in params with the remaining params, as the /api proxy does.
func (s *Service) Query(ctx context.Context, params url.Values) ([]json.RawMessage, error) {
	action := strings.TrimSpace(params.Get("action"))
	if action == "" {
		return nil, ErrMissingAction
	}
	rest := make(url.Values, len(params))
	for k, v := range params {
		if k == "action" {
			continue
		}
		rest[k] = v
	}
	return s.fetch(ctx, action, rest)
}

// Standings returns the raw table for a league.
func (s *Service) Standings(ctx context.Context, leagueID string) ([]standings.Standing, error) {
	return fetchAs[standings.Standing](ctx, s, apifootball.ActionStandings, leagueParams(leagueID))
}

// TeamRecords returns the get_teams records of a league as upstream sent them, or of every league when leagueID is empty.
// They share a cache entry with the equivalent proxy query.
func (s *Service) TeamRecords(ctx context.Context, leagueID string) ([]json.RawMessage, error) {
	return s.fetch(ctx, apifootball.ActionTeams, leagueParams(leagueID))
}

// EventQuery filters get_events. Dates use YYYY-MM-DD; LeagueID may be a comma separated list.
type EventQuery struct {
	From      string
	To        string
	LeagueID  string
	MatchLive bool
}

func (q EventQuery) params() url.Values {
	p := url.Values{}
	if q.From != "" {
		p.Set("from", q.From)
	}
	if q.To != "" {
		p.Set("to", q.To)
	}
	if q.LeagueID != "" {
		p.Set("league_id", q.LeagueID)
	}
	if q.MatchLive {
		p.Set("match_live", "1")
	}
	return p
}

// Events returns fixtures and results matching q. Malformed or inverted date bounds are rejected before any upstream call.
func (s *Service) Events(ctx context.Context, q EventQuery) ([]matches.Match, error) {
	if err := timeutil.ValidateRange(q.From, q.To); err != nil {
		return nil, err
	}
	return fetchAs[matches.Match](ctx, s, apifootball.ActionEvents, q.params())
}

// LiveMatches returns today's (UTC) in-progress matches across the tracked leagues.
func (s *Service) LiveMatches(ctx context.Context) (matches.LiveResponse, error) {
	today := timeutil.UTCDate(s.now())
	list, err := s.Events(ctx, EventQuery{
		From:      today,
		To:        today,
		LeagueID:  strings.Join(leagues.RomanianIDs(), ","),
		MatchLive: true,
	})
	if err != nil {
		return matches.LiveResponse{}, err
	}
	return matches.LiveResponse{Date: today, Matches: list}, nil
}

func (s *Service) fetch(ctx context.Context, action string, params url.Values) ([]json.RawMessage, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	entry := cache.Entry{
		TTL:  s.ttl.For(action),
		Tags: []string{apifootball.TagFor(action, params)},
	}
	return cache.LoadJSON(ctx, s.loader, apifootball.CacheKey(action, params), entry,
		func(ctx context.Context) ([]json.RawMessage, error) {
			records, err := s.provider.Fetch(ctx, action, params)
			if err != nil {
				return nil, err
			}
			if records == nil {
				records = []json.RawMessage{}
			}
			return records, nil
		})
}

func fetchAs[T any](ctx context.Context, s *Service, action string, params url.Values) ([]T, error) {
	records, err := s.fetch(ctx, action, params)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for i, raw := range records {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%s: decode record %d: %w", action, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func leagueParams(leagueID string) url.Values {
	p := url.Values{}
	if id := strings.TrimSpace(leagueID); id != "" {
		p.Set("league_id", id)
	}
	return p
}
