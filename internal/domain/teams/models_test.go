package teams

import (
	"encoding/json"
	"testing"
)

func TestTeamDecodesNumericKeys(t *testing.T) {
	raw := `{"team_key":2615,"team_name":"FCSB","venue":{"venue_capacity":"55,634"},"players":[{"player_key":68050,"player_name":"Florin Niță","player_type":"Goalkeepers"}],"coaches":[{"coach_name":"Elias Charalambous","coach_age":"43"}]}`
	var team Team
	if err := json.Unmarshal([]byte(raw), &team); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if team.TeamKey != "2615" {
		t.Fatalf("expected team key 2615, got %q", team.TeamKey)
	}
	if len(team.Players) != 1 || team.Players[0].PlayerKey != "68050" {
		t.Fatalf("unexpected players %+v", team.Players)
	}
	if team.Venue.Capacity != "55,634" {
		t.Fatalf("unexpected venue %+v", team.Venue)
	}
}

func TestPlayerTypesOrder(t *testing.T) {
	want := []string{"Goalkeepers", "Defenders", "Midfielders", "Forwards"}
	for i, pt := range PlayerTypes {
		if pt != want[i] {
			t.Fatalf("expected %s at %d, got %s", want[i], i, pt)
		}
	}
}
