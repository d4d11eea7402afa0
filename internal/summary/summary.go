// Package summary turns raw Riot match detail into the structured report the
// notifier renders: a role-by-role comparison of the followed player's team
// against the opposing team.
package summary

import (
	"fmt"

	"riftwatch/internal/riot"
)

// Roles in the order they are presented, top lane first.
var Roles = []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}

var queueNames = map[int]string{
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	700:  "Clash",
	830:  "Co-op vs AI Intro",
	840:  "Co-op vs AI Beginner",
	850:  "Co-op vs AI Intermediate",
	900:  "URF",
	1400: "Ultimate Spellbook",
	1700: "Arena",
}

// ParticipantStats is the per-player slice of a matchup.
type ParticipantStats struct {
	SummonerName string `json:"summoner_name"`
	ChampionName string `json:"champion_name"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	Farm         int    `json:"farm"` // lane + jungle minions
	GoldEarned   int    `json:"gold_earned"`
	VisionScore  int    `json:"vision_score"`
}

// Matchup pairs the followed player's laner with their direct opponent.
type Matchup struct {
	Role  string           `json:"role"`
	Ally  ParticipantStats `json:"ally"`
	Enemy ParticipantStats `json:"enemy"`
}

// MatchSummary is the structured report for one completed match.
type MatchSummary struct {
	MatchID      string           `json:"match_id"`
	GameMode     string           `json:"game_mode"`
	GameResult   string           `json:"game_result"`
	GameDuration string           `json:"game_duration"`
	Win          bool             `json:"win"`
	Player       ParticipantStats `json:"player"`
	Matchups     []Matchup        `json:"matchups"`
}

// Build produces the summary for the participant identified by puuid.
// Matchups only include roles where both teams reported a position; modes
// without lane assignments (ARAM, Arena) yield an empty matchup list.
func Build(match *riot.Match, puuid string) (*MatchSummary, error) {
	player := match.FindParticipant(puuid)
	if player == nil {
		return nil, fmt.Errorf("player %s is not a participant of match %s", puuid, match.Metadata.MatchID)
	}

	result := "Defeat"
	if player.Win {
		result = "Victory"
	}

	allies := make(map[string]*riot.Participant)
	enemies := make(map[string]*riot.Participant)
	for i := range match.Info.Participants {
		p := &match.Info.Participants[i]
		if p.TeamPosition == "" {
			continue
		}
		if p.TeamID == player.TeamID {
			allies[p.TeamPosition] = p
		} else {
			enemies[p.TeamPosition] = p
		}
	}

	var matchups []Matchup
	for _, role := range Roles {
		ally, okAlly := allies[role]
		enemy, okEnemy := enemies[role]
		if !okAlly || !okEnemy {
			continue
		}
		matchups = append(matchups, Matchup{
			Role:  role,
			Ally:  participantStats(ally),
			Enemy: participantStats(enemy),
		})
	}

	return &MatchSummary{
		MatchID:      match.Metadata.MatchID,
		GameMode:     QueueName(match.Info.QueueID),
		GameResult:   result,
		GameDuration: formatDuration(match.Info.GameDuration),
		Win:          player.Win,
		Player:       participantStats(player),
		Matchups:     matchups,
	}, nil
}

func participantStats(p *riot.Participant) ParticipantStats {
	return ParticipantStats{
		SummonerName: p.DisplayName(),
		ChampionName: p.ChampionName,
		Kills:        p.Kills,
		Deaths:       p.Deaths,
		Assists:      p.Assists,
		Farm:         p.TotalMinionsKilled + p.NeutralMinionsKilled,
		GoldEarned:   p.GoldEarned,
		VisionScore:  p.VisionScore,
	}
}

// QueueName returns a human-readable name for a queue id.
func QueueName(queueID int) string {
	if name, ok := queueNames[queueID]; ok {
		return name
	}
	return "Custom Game"
}

func formatDuration(seconds int64) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
