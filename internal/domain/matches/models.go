package matches

import "github.com/preston-bernstein/superliga-data-service/internal/domain"

// Match mirrors the apifootball get_events record (the subset the service exposes).
type Match struct {
	MatchID       domain.Text `json:"match_id"`
	CountryID     domain.Text `json:"country_id"`
	CountryName   string      `json:"country_name"`
	LeagueID      domain.Text `json:"league_id"`
	LeagueName    string      `json:"league_name"`
	Date          string      `json:"match_date"`
	Status        string      `json:"match_status"`
	Time          string      `json:"match_time"`
	HomeTeamID    domain.Text `json:"match_hometeam_id"`
	HomeTeamName  string      `json:"match_hometeam_name"`
	HomeTeamScore domain.Text `json:"match_hometeam_score"`
	AwayTeamName  string      `json:"match_awayteam_name"`
	AwayTeamID    domain.Text `json:"match_awayteam_id"`
	AwayTeamScore domain.Text `json:"match_awayteam_score"`
	HomeBadge     string      `json:"team_home_badge"`
	AwayBadge     string      `json:"team_away_badge"`
	LeagueLogo    string      `json:"league_logo"`
	CountryLogo   string      `json:"country_logo"`
	Live          domain.Text `json:"match_live,omitempty"`
}

// IsLive reports whether upstream flagged the match as in progress.
func (m Match) IsLive() bool {
	return m.Live == "1"
}

// LiveResponse is the payload for the live matches endpoint.
type LiveResponse struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}
