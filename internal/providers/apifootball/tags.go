package apifootball

import (
	"net/url"
	"time"
)

// TagFor maps an action and its parameters to the revalidation tag its cached response carries.
func TagFor(action string, params url.Values) string {
	switch action {
	case ActionEvents:
		if params.Get("match_live") == "1" {
			return "live-matches"
		}
		return "events"
	case ActionStandings:
		return "standings-" + leagueOrAll(params)
	case ActionTeams:
		return "teams-" + leagueOrAll(params)
	case ActionLeagues:
		return "leagues"
	case ActionTopScorers:
		return "topscorers-" + leagueOrAll(params)
	default:
		return "default"
	}
}

func leagueOrAll(params url.Values) string {
	if _, ok := params["league_id"]; ok {
		return params.Get("league_id")
	}
	return "all"
}

// TTLPolicy chooses how long a cached response stays fresh.
type TTLPolicy struct {
	Standings time.Duration
	Teams     time.Duration
}

// For returns the revalidation window for an action.
func (p TTLPolicy) For(action string) time.Duration {
	switch action {
	case ActionEvents:
		return eventsTTL
	case ActionStandings:
		return orFallback(p.Standings)
	case ActionTeams:
		return orFallback(p.Teams)
	case ActionLeagues:
		return leaguesTTL
	case ActionTopScorers:
		return topScorersTTL
	default:
		return defaultTTL
	}
}

// orFallback fills an unset window. Negative windows mean "do not cache" and pass through.
func orFallback(d time.Duration) time.Duration {
	if d == 0 {
		return fallbackTTL
	}
	return d
}

// CacheKey identifies a request independently of parameter order and of the caller's APIkey.
func CacheKey(action string, params url.Values) string {
	q := cloneParams(params)
	q.Del(apiKeyParam)
	q.Set(actionParam, action)
	return providerName + ":" + q.Encode()
}
