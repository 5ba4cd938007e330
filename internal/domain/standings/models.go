package standings

import "github.com/preston-bernstein/superliga-data-service/internal/domain"

// Standing mirrors one row of the apifootball get_standings response.
type Standing struct {
	CountryName string      `json:"country_name"`
	LeagueID    domain.Text `json:"league_id"`
	LeagueName  string      `json:"league_name"`
	TeamID      domain.Text `json:"team_id"`
	TeamName    string      `json:"team_name"`

	OverallPosition domain.Text `json:"overall_league_position"`
	OverallPlayed   domain.Text `json:"overall_league_payed"`
	OverallWins     domain.Text `json:"overall_league_W"`
	OverallDraws    domain.Text `json:"overall_league_D"`
	OverallLosses   domain.Text `json:"overall_league_L"`
	OverallGF       domain.Text `json:"overall_league_GF"`
	OverallGA       domain.Text `json:"overall_league_GA"`
	OverallPoints   domain.Text `json:"overall_league_PTS"`

	HomePosition domain.Text `json:"home_league_position"`
	HomePlayed   domain.Text `json:"home_league_payed"`
	HomeWins     domain.Text `json:"home_league_W"`
	HomeDraws    domain.Text `json:"home_league_D"`
	HomeLosses   domain.Text `json:"home_league_L"`
	HomeGF       domain.Text `json:"home_league_GF"`
	HomeGA       domain.Text `json:"home_league_GA"`
	HomePoints   domain.Text `json:"home_league_PTS"`

	AwayPosition domain.Text `json:"away_league_position"`
	AwayPlayed   domain.Text `json:"away_league_payed"`
	AwayWins     domain.Text `json:"away_league_W"`
	AwayDraws    domain.Text `json:"away_league_D"`
	AwayLosses   domain.Text `json:"away_league_L"`
	AwayGF       domain.Text `json:"away_league_GF"`
	AwayGA       domain.Text `json:"away_league_GA"`
	AwayPoints   domain.Text `json:"away_league_PTS"`

	LeagueRound string `json:"league_round,omitempty"`
	TeamBadge   string `json:"team_badge,omitempty"`
}

// Position returns the parsed overall position.
func (s Standing) Position() (int, bool) {
	return s.OverallPosition.Int()
}

// Band classifies a table position for qualification/relegation highlighting.
type Band string

const (
	BandNone              Band = ""
	BandChampionship      Band = "championship"
	BandPromotion         Band = "promotion"
	BandRelegationPlayoff Band = "relegation-playoff"
	BandRelegation        Band = "relegation"
)

// Row is a standing annotated with its band.
type Row struct {
	Standing
	Band Band `json:"band,omitempty"`
}

// Group is a named slice of a table.
type Group struct {
	Name string `json:"name"`
	Rows []Row  `json:"standings"`
}

// Table is the derived standings view for one league.
type Table struct {
	LeagueID   string     `json:"leagueId"`
	LeagueName string     `json:"leagueName"`
	Groups     []Group    `json:"groups"`
	Top        []Standing `json:"top"`
}
