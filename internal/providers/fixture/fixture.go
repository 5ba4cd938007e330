package fixture

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/preston-bernstein/superliga-data-service/internal/domain/leagues"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/news"
)

//go:embed data/*.json
var data embed.FS

// Provider serves canned Liga I data for local development and offline runs.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Fetch answers the supported apifootball actions from embedded data.
func (p *Provider) Fetch(ctx context.Context, action string, params url.Values) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch action {
	case "get_standings":
		return forLeague("standings.json", params)
	case "get_teams":
		return forLeague("teams.json", params)
	case "get_topscorers":
		return forLeague("topscorers.json", params)
	case "get_leagues":
		return records("leagues.json")
	default:
		// No fixtures for events or anything else.
		return []json.RawMessage{}, nil
	}
}

// FetchNews returns a canned newsapi.org response.
func (p *Provider) FetchNews(ctx context.Context) (news.Response, error) {
	if err := ctx.Err(); err != nil {
		return news.Response{}, err
	}
	var resp news.Response
	if err := decode("news.json", &resp); err != nil {
		return news.Response{}, err
	}
	return resp, nil
}

// FallbackTeams returns the five clubs shown when upstream has no teams for Liga I, as get_teams records.
// Each call decodes a fresh copy, so callers may modify the result.
func FallbackTeams() ([]json.RawMessage, error) {
	return records("teams.json")
}

// forLeague serves the fixture when the requested league is Liga I or unspecified.
func forLeague(name string, params url.Values) ([]json.RawMessage, error) {
	id := strings.TrimSpace(params.Get("league_id"))
	if id != "" && id != leagues.LigaI {
		return []json.RawMessage{}, nil
	}
	return records(name)
}

func records(name string) ([]json.RawMessage, error) {
	var out []json.RawMessage
	if err := decode(name, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decode(name string, v any) error {
	raw, err := data.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("fixture: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("fixture: decode %s: %w", name, err)
	}
	return nil
}
