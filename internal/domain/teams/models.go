package teams

import "github.com/preston-bernstein/superliga-data-service/internal/domain"

// Player types as reported by apifootball, in squad display order.
const (
	TypeGoalkeepers = "Goalkeepers"
	TypeDefenders   = "Defenders"
	TypeMidfielders = "Midfielders"
	TypeForwards    = "Forwards"
)

// PlayerTypes is the squad display order.
var PlayerTypes = []string{TypeGoalkeepers, TypeDefenders, TypeMidfielders, TypeForwards}

// TypeLabels holds the Romanian display name of each player type.
var TypeLabels = map[string]string{
	TypeGoalkeepers: "Portari",
	TypeDefenders:   "Fundași",
	TypeMidfielders: "Mijlocași",
	TypeForwards:    "Atacanți",
}

// Team mirrors the apifootball get_teams record.
type Team struct {
	TeamKey     domain.Text `json:"team_key"`
	TeamName    string      `json:"team_name"`
	TeamCountry string      `json:"team_country"`
	TeamFounded domain.Text `json:"team_founded"`
	TeamBadge   string      `json:"team_badge"`
	Venue       Venue       `json:"venue"`
	Players     []Player    `json:"players"`
	Coaches     []Coach     `json:"coaches"`
}

// Venue is the team's home ground.
type Venue struct {
	Name     string      `json:"venue_name"`
	Address  string      `json:"venue_address"`
	City     string      `json:"venue_city"`
	Capacity domain.Text `json:"venue_capacity"`
	Surface  string      `json:"venue_surface"`
}

// Player is a squad member.
type Player struct {
	PlayerKey          domain.Text `json:"player_key"`
	PlayerID           domain.Text `json:"player_id"`
	Image              string      `json:"player_image"`
	Name               string      `json:"player_name"`
	Number             domain.Text `json:"player_number"`
	Country            string      `json:"player_country"`
	Type               string      `json:"player_type"`
	Age                domain.Text `json:"player_age"`
	MatchPlayed        domain.Text `json:"player_match_played"`
	Goals              domain.Text `json:"player_goals"`
	YellowCards        domain.Text `json:"player_yellow_cards"`
	RedCards           domain.Text `json:"player_red_cards"`
	Injured            string      `json:"player_injured"`
	SubstituteOut      domain.Text `json:"player_substitute_out,omitempty"`
	SubstitutesOnBench domain.Text `json:"player_substitutes_on_bench,omitempty"`
	Assists            domain.Text `json:"player_assists,omitempty"`
	Birthdate          string      `json:"player_birthdate,omitempty"`
	IsCaptain          domain.Text `json:"player_is_captain,omitempty"`
	Rating             domain.Text `json:"player_rating"`
}

// Coach is a member of the technical staff.
type Coach struct {
	Name    string      `json:"coach_name"`
	Country string      `json:"coach_country"`
	Age     domain.Text `json:"coach_age"`
}

// PositionGroup holds the players of one type.
type PositionGroup struct {
	Position string   `json:"position"`
	Label    string   `json:"label"`
	Players  []Player `json:"players"`
}
