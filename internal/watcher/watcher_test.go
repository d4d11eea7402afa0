package watcher

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riftwatch/internal/follow"
	"riftwatch/internal/metrics"
	"riftwatch/internal/notifier"
	"riftwatch/internal/pubsub"
	"riftwatch/internal/riot"
	"riftwatch/internal/summary"
)

func newTestWatcher(store Store, riotClient riot.Client, n Notifier) (*Watcher, *metrics.Mock, *pubsub.MockPubSubClient) {
	m := metrics.NewMock()
	ps := pubsub.NewMock("test-project")
	return New(store, riotClient, n, m, ps, time.Minute), m, ps
}

func activeRecord(puuid, guildID, lastMatchID string) *follow.Record {
	return &follow.Record{
		PUUID:       puuid,
		SummonerID:  "summoner-" + puuid,
		GameName:    "Player-" + puuid,
		TagLine:     "EUW",
		Region:      "euw1",
		LastMatchID: lastMatchID,
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
		ChannelID:   "chan-1",
		GuildID:     guildID,
	}
}

func matchFixture(matchID, puuid string, win bool) *riot.Match {
	return &riot.Match{
		Metadata: riot.MatchMetadata{
			MatchID:      matchID,
			Participants: []string{puuid, "enemy"},
		},
		Info: riot.MatchInfo{
			GameDuration: 1925,
			QueueID:      420,
			Participants: []riot.Participant{
				{
					PUUID:        puuid,
					SummonerName: "Player-" + puuid,
					ChampionName: "Ahri",
					TeamID:       100,
					TeamPosition: "MIDDLE",
					Win:          win,
					Kills:        5, Deaths: 2, Assists: 9,
					TotalMinionsKilled: 200, NeutralMinionsKilled: 12,
					GoldEarned: 12000, VisionScore: 25,
				},
				{
					PUUID:        "enemy",
					SummonerName: "Enemy",
					ChampionName: "Zed",
					TeamID:       200,
					TeamPosition: "MIDDLE",
					Win:          !win,
					Kills:        2, Deaths: 5, Assists: 3,
					TotalMinionsKilled: 180,
					GoldEarned:         10000, VisionScore: 15,
				},
			},
		},
	}
}

func TestRunPass_NoRecords(t *testing.T) {
	store := follow.NewMock()
	riotClient := riot.NewMockClient()
	n := notifier.NewMock()
	w, m, _ := newTestWatcher(store, riotClient, n)

	w.RunPass(context.Background(), false)

	assert.Equal(t, 1, m.WatcherPasses())
	assert.Equal(t, 0, m.FollowsChecked())
	assert.Empty(t, riotClient.GetMatchIDsCalls)
	assert.Empty(t, n.SendMatchNotificationCalls)
}

func TestRunPass_ListFailureSkipsPass(t *testing.T) {
	store := follow.NewMock()
	store.ListAllFunc = func() ([]*follow.Record, error) {
		return nil, errors.New("db is down")
	}
	riotClient := riot.NewMockClient()
	n := notifier.NewMock()
	w, m, _ := newTestWatcher(store, riotClient, n)

	w.RunPass(context.Background(), false)

	assert.Equal(t, 0, m.FollowsChecked())
	assert.Empty(t, riotClient.GetMatchIDsCalls)
	assert.Empty(t, n.SendMatchNotificationCalls)
}

func TestRunPass_UnchangedMatchIsNoOp(t *testing.T) {
	rec := activeRecord("p1", "g1", "EUW1_100")
	store := follow.NewMock()
	store.ListAllFunc = func() ([]*follow.Record, error) {
		return []*follow.Record{rec}, nil
	}
	riotClient := riot.NewMockClient()
	riotClient.GetMatchIDsFunc = func(ctx context.Context, platform, puuid string, count int) ([]string, error) {
		return []string{"EUW1_100"}, nil
	}
	n := notifier.NewMock()
	w, m, ps := newTestWatcher(store, riotClient, n)

	w.RunPass(context.Background(), false)

	assert.Empty(t, riotClient.GetMatchCalls)
	assert.Empty(t, store.UpdateLastMatchCalls)
	assert.Empty(t, n.SendMatchNotificationCalls)
	assert.Empty(t, ps.SendMessageCalls)
	assert.Equal(t, 0, m.MatchesDetected())
	assert.Equal(t, 1, m.FollowsChecked())
}

func TestRunPass_NewMatchUpdatesAndNotifies(t *testing.T) {
	rec := activeRecord("p1", "g1", "EUW1_100")
	store := follow.NewMock()
	store.ListAllFunc = func() ([]*follow.Record, error) {
		return []*follow.Record{rec}, nil
	}
	riotClient := riot.NewMockClient()
	riotClient.GetMatchIDsFunc = func(ctx context.Context, platform, puuid string, count int) ([]string, error) {
		assert.Equal(t, "euw1", platform)
		assert.Equal(t, 1, count)
		return []string{"EUW1_101"}, nil
	}
	riotClient.GetMatchFunc = func(ctx context.Context, platform, matchID string) (*riot.Match, error) {
		return matchFixture(matchID, "p1", true), nil
	}
	n := notifier.NewMock()
	w, m, ps := newTestWatcher(store, riotClient, n)

	w.RunPass(context.Background(), false)

	require.Len(t, store.UpdateLastMatchCalls, 1)
	assert.Equal(t, "EUW1_101", store.UpdateLastMatchCalls[0].MatchID)
	assert.Equal(t, "p1", store.UpdateLastMatchCalls[0].PUUID)
	assert.Equal(t, "g1", store.UpdateLastMatchCalls[0].GuildID)

	require.Len(t, n.SendMatchNotificationCalls, 1)
	call := n.SendMatchNotificationCalls[0]
	assert.Equal(t, "chan-1", call.ChannelID)
	assert.Equal(t, "Player-p1#EUW", call.PlayerName)
	assert.Equal(t, "EUW1_101", call.Summary.MatchID)
	assert.Equal(t, "Victory", call.Summary.GameResult)

	require.Len(t, ps.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventMatchDetected), ps.SendMessageCalls[0].Topic)
	event, ok := ps.SendMessageCalls[0].Data.(MatchEvent)
	require.True(t, ok)
	assert.Equal(t, "EUW1_101", event.MatchID)
	assert.True(t, event.Win)
	assert.Equal(t, 5, event.Kills)

	assert.Equal(t, 1, m.MatchesDetected())
}

func TestRunPass_StoreUpdateFailurePreventsNotification(t *testing.T) {
	rec := activeRecord("p1", "g1", "EUW1_100")
	store := follow.NewMock()
	store.ListAllFunc = func() ([]*follow.Record, error) {
		return []*follow.Record{rec}, nil
	}
	store.UpdateLastMatchFunc = func(puuid, guildID, matchID string) error {
		return errors.New("db is locked")
	}
	riotClient := riot.NewMockClient()
	riotClient.GetMatchIDsFunc = func(ctx context.Context, platform, puuid string, count int) ([]string, error) {
		return []string{"EUW1_101"}, nil
	}
	riotClient.GetMatchFunc = func(ctx context.Context, platform, matchID string) (*riot.Match, error) {
		return matchFixture(matchID, "p1", true), nil
	}
	n := notifier.NewMock()
	w, _, _ := newTestWatcher(store, riotClient, n)

	w.RunPass(context.Background(), false)

	assert.Empty(t, n.SendMatchNotificationCalls)
}

func TestRunPass_NotificationFailureStillAdvances(t *testing.T) {
	rec := activeRecord("p1", "g1", "EUW1_100")
	store := follow.NewMock()
	store.ListAllFunc = func() ([]*follow.Record, error) {
		return []*follow.Record{rec}, nil
	}
	riotClient := riot.NewMockClient()
	riotClient.GetMatchIDsFunc = func(ctx context.Context, platform, puuid string, count int) ([]string, error) {
		return []string{"EUW1_101"}, nil
	}
	riotClient.GetMatchFunc = func(ctx context.Context, platform, matchID string) (*riot.Match, error) {
		return matchFixture(matchID, "p1", false), nil
	}
	n := notifier.NewMock()
	n.SendMatchNotificationFunc = func(channelID, playerName string, sum *summary.MatchSummary, dryRun bool) error {
		return errors.New("discord is down")
	}
	w, _, ps := newTestWatcher(store, riotClient, n)

	w.RunPass(context.Background(), false)

	require.Len(t, store.UpdateLastMatchCalls, 1)
	assert.Equal(t, "EUW1_101", store.UpdateLastMatchCalls[0].MatchID)
	// The event is still published so stats stay consistent even when the
	// notification channel is unavailable.
	require.Len(t, ps.SendMessageCalls, 1)
}

func TestRunPass_ExpiredFollowIsDeleted(t *testing.T) {
	rec := activeRecord("p1", "g1", "EUW1_100")
	rec.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	store := follow.NewMock()
	store.ListAllFunc = func() ([]*follow.Record, error) {
		return []*follow.Record{rec}, nil
	}
	riotClient := riot.NewMockClient()
	n := notifier.NewMock()
	w, m, ps := newTestWatcher(store, riotClient, n)

	w.RunPass(context.Background(), false)

	require.Len(t, store.DeleteCalls, 1)
	assert.Equal(t, "p1", store.DeleteCalls[0].PUUID)
	assert.Equal(t, "g1", store.DeleteCalls[0].GuildID)
	assert.Empty(t, riotClient.GetMatchIDsCalls)
	assert.Empty(t, n.SendMatchNotificationCalls)
	assert.Equal(t, 1, m.FollowsExpired())

	require.Len(t, ps.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventFollowExpired), ps.SendMessageCalls[0].Topic)
}

func TestRunPass_RecordFailureIsIsolated(t *testing.T) {
	recs := []*follow.Record{
		activeRecord("p1", "g1", "EUW1_100"),
		activeRecord("p2", "g1", "EUW1_200"),
		activeRecord("p3", "g2", "EUW1_300"),
	}
	store := follow.NewMock()
	store.ListAllFunc = func() ([]*follow.Record, error) {
		return recs, nil
	}
	riotClient := riot.NewMockClient()
	riotClient.GetMatchIDsFunc = func(ctx context.Context, platform, puuid string, count int) ([]string, error) {
		if puuid == "p2" {
			return nil, errors.New("riot API 503")
		}
		return []string{fmt.Sprintf("EUW1_%s_new", puuid)}, nil
	}
	riotClient.GetMatchFunc = func(ctx context.Context, platform, matchID string) (*riot.Match, error) {
		if matchID == "EUW1_p1_new" {
			return matchFixture(matchID, "p1", true), nil
		}
		return matchFixture(matchID, "p3", true), nil
	}
	n := notifier.NewMock()
	w, m, _ := newTestWatcher(store, riotClient, n)

	w.RunPass(context.Background(), false)

	assert.Equal(t, 3, m.FollowsChecked())
	require.Len(t, n.SendMatchNotificationCalls, 2)
	require.Len(t, store.UpdateLastMatchCalls, 2)
	assert.Equal(t, "EUW1_p1_new", store.UpdateLastMatchCalls[0].MatchID)
	assert.Equal(t, "EUW1_p3_new", store.UpdateLastMatchCalls[1].MatchID)
}

func TestRunPass_DryRunSkipsWrites(t *testing.T) {
	rec := activeRecord("p1", "g1", "EUW1_100")
	store := follow.NewMock()
	store.ListAllFunc = func() ([]*follow.Record, error) {
		return []*follow.Record{rec}, nil
	}
	riotClient := riot.NewMockClient()
	riotClient.GetMatchIDsFunc = func(ctx context.Context, platform, puuid string, count int) ([]string, error) {
		return []string{"EUW1_101"}, nil
	}
	riotClient.GetMatchFunc = func(ctx context.Context, platform, matchID string) (*riot.Match, error) {
		return matchFixture(matchID, "p1", true), nil
	}
	n := notifier.NewMock()
	w, _, ps := newTestWatcher(store, riotClient, n)

	w.RunPass(context.Background(), true)

	assert.Empty(t, store.UpdateLastMatchCalls)
	assert.Empty(t, ps.SendMessageCalls)
	require.Len(t, n.SendMatchNotificationCalls, 1)
	assert.True(t, n.SendMatchNotificationCalls[0].DryRun)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	store := follow.NewMock()
	riotClient := riot.NewMockClient()
	n := notifier.NewMock()
	m := metrics.NewMock()
	ps := pubsub.NewMock("test-project")
	w := New(store, riotClient, n, m, ps, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}

	// Initial pass plus at least one tick.
	assert.GreaterOrEqual(t, m.WatcherPasses(), 2)
}
