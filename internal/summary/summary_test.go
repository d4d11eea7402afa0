package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riftwatch/internal/riot"
)

func fixtureMatch() *riot.Match {
	mk := func(puuid, name, champ, position string, teamID int, win bool, k, d, a, cs, jungle, gold, vision int) riot.Participant {
		return riot.Participant{
			PUUID:                puuid,
			SummonerName:         name,
			ChampionName:         champ,
			TeamPosition:         position,
			TeamID:               teamID,
			Win:                  win,
			Kills:                k,
			Deaths:               d,
			Assists:              a,
			TotalMinionsKilled:   cs,
			NeutralMinionsKilled: jungle,
			GoldEarned:           gold,
			VisionScore:          vision,
		}
	}
	return &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: "EUW1_42"},
		Info: riot.MatchInfo{
			GameDuration: 1925, // 32:05
			QueueID:      420,
			Participants: []riot.Participant{
				mk("ally-top", "AllyTop", "Garen", "TOP", 100, true, 2, 1, 3, 200, 0, 11000, 20),
				mk("ally-mid", "AllyMid", "Ahri", "MIDDLE", 100, true, 7, 2, 9, 180, 12, 13000, 25),
				mk("enemy-top", "EnemyTop", "Darius", "TOP", 200, false, 1, 2, 2, 190, 0, 10000, 18),
				mk("enemy-mid", "EnemyMid", "Zed", "MIDDLE", 200, false, 3, 7, 1, 160, 8, 11000, 15),
			},
		},
	}
}

func TestBuild(t *testing.T) {
	sum, err := Build(fixtureMatch(), "ally-mid")
	require.NoError(t, err)

	assert.Equal(t, "EUW1_42", sum.MatchID)
	assert.Equal(t, "Ranked Solo/Duo", sum.GameMode)
	assert.Equal(t, "Victory", sum.GameResult)
	assert.Equal(t, "32:05", sum.GameDuration)
	assert.True(t, sum.Win)
	assert.Equal(t, "Ahri", sum.Player.ChampionName)
	assert.Equal(t, 192, sum.Player.Farm, "farm should include jungle minions")

	// Only TOP and MIDDLE have both sides in the fixture.
	require.Len(t, sum.Matchups, 2)
	assert.Equal(t, "TOP", sum.Matchups[0].Role)
	assert.Equal(t, "MIDDLE", sum.Matchups[1].Role)

	mid := sum.Matchups[1]
	assert.Equal(t, "Ahri", mid.Ally.ChampionName)
	assert.Equal(t, "Zed", mid.Enemy.ChampionName)
	assert.Equal(t, 7, mid.Ally.Kills)
	assert.Equal(t, 168, mid.Enemy.Farm)
}

func TestBuild_DefeatFromTheOtherSide(t *testing.T) {
	sum, err := Build(fixtureMatch(), "enemy-mid")
	require.NoError(t, err)

	assert.Equal(t, "Defeat", sum.GameResult)
	assert.False(t, sum.Win)
	// Matchups are oriented around the followed player's team.
	require.Len(t, sum.Matchups, 2)
	assert.Equal(t, "Zed", sum.Matchups[1].Ally.ChampionName)
	assert.Equal(t, "Ahri", sum.Matchups[1].Enemy.ChampionName)
}

func TestBuild_PlayerNotInMatch(t *testing.T) {
	_, err := Build(fixtureMatch(), "stranger")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a participant")
}

func TestBuild_NoLaneAssignments(t *testing.T) {
	match := fixtureMatch()
	match.Info.QueueID = 450
	for i := range match.Info.Participants {
		match.Info.Participants[i].TeamPosition = ""
	}

	sum, err := Build(match, "ally-mid")
	require.NoError(t, err)
	assert.Equal(t, "ARAM", sum.GameMode)
	assert.Empty(t, sum.Matchups, "positionless modes should not fabricate matchups")
}

func TestQueueName_Unknown(t *testing.T) {
	assert.Equal(t, "Custom Game", QueueName(31))
}
