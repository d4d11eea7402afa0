package riot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*APIClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("test-api-key")
	client.BaseURL = server.URL
	client.minInterval = 0
	return client, server
}

func TestGetMatchIDs(t *testing.T) {
	var gotToken string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Riot-Token")
		assert.Equal(t, "/lol/match/v5/matches/by-puuid/puuid-1/ids", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		w.Write([]byte(`["EUW1_123", "EUW1_122"]`))
	})
	defer server.Close()

	ids, err := client.GetMatchIDs(context.Background(), "euw1", "puuid-1", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"EUW1_123", "EUW1_122"}, ids)
	assert.Equal(t, "test-api-key", gotToken, "API key should be sent as a header")
}

func TestGetMatch(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lol/match/v5/matches/EUW1_123", r.URL.Path)
		w.Write([]byte(`{
			"metadata": {"matchId": "EUW1_123", "participants": ["p1", "p2"]},
			"info": {
				"gameDuration": 1903,
				"queueId": 420,
				"participants": [
					{"puuid": "p1", "championName": "Ahri", "teamId": 100, "teamPosition": "MIDDLE", "win": true, "kills": 7, "deaths": 2, "assists": 9},
					{"puuid": "p2", "championName": "Zed", "teamId": 200, "teamPosition": "MIDDLE", "win": false, "kills": 3, "deaths": 7, "assists": 1}
				]
			}
		}`))
	})
	defer server.Close()

	match, err := client.GetMatch(context.Background(), "euw1", "EUW1_123")
	require.NoError(t, err)
	assert.Equal(t, "EUW1_123", match.Metadata.MatchID)
	require.Len(t, match.Info.Participants, 2)
	assert.Equal(t, "Ahri", match.Info.Participants[0].ChampionName)

	participant := match.FindParticipant("p2")
	require.NotNil(t, participant)
	assert.Equal(t, "Zed", participant.ChampionName)
	assert.Nil(t, match.FindParticipant("p3"))
}

func TestGetAccountByRiotID(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/riot/account/v1/accounts/by-riot-id/Faker/KR1", r.URL.Path)
		w.Write([]byte(`{"puuid": "puuid-faker", "gameName": "Faker", "tagLine": "KR1"}`))
	})
	defer server.Close()

	account, err := client.GetAccountByRiotID(context.Background(), "Faker", "KR1")
	require.NoError(t, err)
	assert.Equal(t, "puuid-faker", account.PUUID)
}

func TestGetAccountByRiotID_NotFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": {"message": "Data not found", "status_code": 404}}`))
	})
	defer server.Close()

	_, err := client.GetAccountByRiotID(context.Background(), "NoSuchPlayer", "EUW")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetSummonerByPUUID(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lol/summoner/v4/summoners/by-puuid/puuid-1", r.URL.Path)
		w.Write([]byte(`{"id": "summ-1", "accountId": "acc-1", "puuid": "puuid-1", "summonerLevel": 245}`))
	})
	defer server.Close()

	summoner, err := client.GetSummonerByPUUID(context.Background(), "euw1", "puuid-1")
	require.NoError(t, err)
	assert.Equal(t, "summ-1", summoner.ID)
	assert.Equal(t, 245, summoner.SummonerLevel)
}

func TestClusterFor(t *testing.T) {
	assert.Equal(t, "europe", ClusterFor("euw1"))
	assert.Equal(t, "americas", ClusterFor("NA1"))
	assert.Equal(t, "asia", ClusterFor("kr"))
	assert.Equal(t, "sea", ClusterFor("oc1"))
	// Unknown platforms fall back to europe.
	assert.Equal(t, "europe", ClusterFor("nope"))
	assert.True(t, IsValidPlatform("EUW1"))
	assert.False(t, IsValidPlatform("moon1"))
}
