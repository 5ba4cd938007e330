package apifootball

import "time"

const (
	providerName       = "apifootball"
	defaultBaseURL     = "https://apiv3.apifootball.com/"
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 16 << 20
	apiKeyParam        = "APIkey"
	actionParam        = "action"
)

// Supported upstream actions.
const (
	ActionEvents     = "get_events"
	ActionStandings  = "get_standings"
	ActionTeams      = "get_teams"
	ActionLeagues    = "get_leagues"
	ActionTopScorers = "get_topscorers"
)

// Revalidation windows for actions without a configurable TTL.
const (
	eventsTTL     = 60 * time.Second
	leaguesTTL    = 24 * time.Hour
	topScorersTTL = time.Hour
	defaultTTL    = 5 * time.Minute
	fallbackTTL   = time.Hour
)
