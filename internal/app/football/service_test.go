package football

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/superliga-data-service/internal/cache"
	"github.com/preston-bernstein/superliga-data-service/internal/providers"
	"github.com/preston-bernstein/superliga-data-service/internal/providers/apifootball"
	"github.com/preston-bernstein/superliga-data-service/internal/teststubs"
)

func newService(p providers.FootballProvider) (*Service, *cache.MemoryStore) {
	store := cache.NewMemoryStore()
	svc := NewService(p, cache.NewLoader(store, nil, nil), apifootball.TTLPolicy{Standings: time.Hour, Teams: time.Hour})
	return svc, store
}

func TestQueryRequiresAction(t *testing.T) {
	svc, _ := newService(&teststubs.StubProvider{})

	_, err := svc.Query(context.Background(), url.Values{"league_id": {"272"}})
	assert.ErrorIs(t, err, ErrMissingAction)
}

func TestQueryStripsActionAndCaches(t *testing.T) {
	stub := &teststubs.StubProvider{Records: teststubs.Raw(map[string]string{"team_name": "FCSB"})}
	svc, store := newService(stub)
	params := url.Values{"action": {"get_standings"}, "league_id": {"272"}}

	for i := 0; i < 2; i++ {
		recs, err := svc.Query(context.Background(), params)
		require.NoError(t, err)
		require.Len(t, recs, 1)
	}

	assert.Equal(t, int32(1), stub.Calls.Load())
	action, sent := stub.Last()
	assert.Equal(t, "get_standings", action)
	assert.Empty(t, sent.Get("action"))
	assert.Equal(t, "272", sent.Get("league_id"))

	removed, err := store.InvalidateTag(context.Background(), "standings-272")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestQueryPropagatesAPIErrorsWithoutCaching(t *testing.T) {
	stub := &teststubs.StubProvider{Errs: []error{&providers.APIError{Message: "404"}}}
	svc, store := newService(stub)
	params := url.Values{"action": {"get_teams"}}

	_, err := svc.Query(context.Background(), params)
	_, ok := providers.AsAPIError(err)
	assert.True(t, ok)
	assert.Zero(t, store.Len())

	recs, err := svc.Query(context.Background(), params)
	require.NoError(t, err)
	assert.NotNil(t, recs)
}

func TestStandingsDecodesRecords(t *testing.T) {
	stub := &teststubs.StubProvider{Records: teststubs.Raw(
		map[string]any{"team_name": "FCSB", "overall_league_position": "1"},
		map[string]any{"team_name": "CFR Cluj", "overall_league_position": 2},
	)}
	svc, _ := newService(stub)

	rows, err := svc.Standings(context.Background(), "272")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	pos, ok := rows[1].Position()
	assert.True(t, ok)
	assert.Equal(t, 2, pos)
}

func TestTeamsWithoutLeagueOmitsParam(t *testing.T) {
	stub := &teststubs.StubProvider{}
	svc, _ := newService(stub)

	_, err := svc.TeamRecords(context.Background(), "")
	require.NoError(t, err)
	_, sent := stub.Last()
	_, has := sent["league_id"]
	assert.False(t, has)
}

func TestTeamRecordsAreServedVerbatimAndShareProxyEntry(t *testing.T) {
	raw := json.RawMessage(`{"team_key":"1","team_name":"FCSB","team_extra":"kept","players":[{"player_name":"A","player_complete_name":"Full A"}]}`)
	stub := &teststubs.StubProvider{Records: []json.RawMessage{raw}}
	svc, _ := newService(stub)

	recs, err := svc.TeamRecords(context.Background(), "272")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.JSONEq(t, string(raw), string(recs[0]))

	_, err = svc.Query(context.Background(), url.Values{"action": {"get_teams"}, "league_id": {"272"}})
	require.NoError(t, err)
	assert.Equal(t, int32(1), stub.Calls.Load())
}

func TestDecodeFailureIsReported(t *testing.T) {
	stub := &teststubs.StubProvider{Records: teststubs.Raw([]int{1})}
	svc, _ := newService(stub)

	_, err := svc.Standings(context.Background(), "272")
	assert.ErrorContains(t, err, "decode record 0")
}

func TestLiveMatchesUsesTodayAndTrackedLeagues(t *testing.T) {
	stub := &teststubs.StubProvider{Records: teststubs.Raw(map[string]string{"match_id": "9", "match_live": "1"})}
	svc, _ := newService(stub)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("EEST", 3*3600)) }

	live, err := svc.LiveMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", live.Date)
	require.Len(t, live.Matches, 1)
	assert.True(t, live.Matches[0].IsLive())

	action, sent := stub.Last()
	assert.Equal(t, apifootball.ActionEvents, action)
	assert.Equal(t, "2024-05-01", sent.Get("from"))
	assert.Equal(t, "2024-05-01", sent.Get("to"))
	assert.Equal(t, "272,271,270", sent.Get("league_id"))
	assert.Equal(t, "1", sent.Get("match_live"))
}

func TestNilProviderIsUnavailable(t *testing.T) {
	svc := NewService(nil, nil, apifootball.TTLPolicy{})

	_, err := svc.Query(context.Background(), url.Values{"action": {"get_topscorers"}, "league_id": {"272"}})
	assert.True(t, errors.Is(err, providers.ErrProviderUnavailable))
}

func TestEventsRejectsInvertedRange(t *testing.T) {
	stub := &teststubs.StubProvider{}
	svc, _ := newService(stub)

	_, err := svc.Events(context.Background(), EventQuery{From: "2024-05-02", To: "2024-05-01"})
	assert.ErrorContains(t, err, "after to date")
	assert.Equal(t, int32(0), stub.Calls.Load())
}
