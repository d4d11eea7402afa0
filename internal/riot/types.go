package riot

// Account represents a Riot account from the Account-V1 API.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner represents a summoner from the Summoner-V4 API.
type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	SummonerLevel int    `json:"summonerLevel"`
}

// Match represents match data from the Match-V5 API.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata contains match metadata.
type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

// MatchInfo contains detailed match information.
type MatchInfo struct {
	GameDuration     int64         `json:"gameDuration"` // seconds
	GameMode         string        `json:"gameMode"`
	GameType         string        `json:"gameType"`
	QueueID          int           `json:"queueId"`
	GameCreation     int64         `json:"gameCreation"`     // unix ms
	GameEndTimestamp int64         `json:"gameEndTimestamp"` // unix ms
	Participants     []Participant `json:"participants"`
}

// Participant represents a player in the match.
type Participant struct {
	PUUID                string `json:"puuid"`
	SummonerID           string `json:"summonerId"`
	SummonerName         string `json:"summonerName"`
	RiotIDGameName       string `json:"riotIdGameName"`
	RiotIDTagline        string `json:"riotIdTagline"`
	ChampionName         string `json:"championName"`
	ChampionID           int    `json:"championId"`
	TeamID               int    `json:"teamId"`
	TeamPosition         string `json:"teamPosition"`
	Win                  bool   `json:"win"`
	Kills                int    `json:"kills"`
	Deaths               int    `json:"deaths"`
	Assists              int    `json:"assists"`
	TotalMinionsKilled   int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled int    `json:"neutralMinionsKilled"`
	GoldEarned           int    `json:"goldEarned"`
	VisionScore          int    `json:"visionScore"`
}

// DisplayName returns the best available human-readable name for a participant.
// Riot has been phasing out summonerName in favour of riot ids, so older match
// payloads populate one field and newer ones the other.
func (p *Participant) DisplayName() string {
	if p.SummonerName != "" {
		return p.SummonerName
	}
	if p.RiotIDGameName != "" {
		return p.RiotIDGameName
	}
	return "Unknown"
}

// FindParticipant finds a participant in the match by PUUID.
func (m *Match) FindParticipant(puuid string) *Participant {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			return &m.Info.Participants[i]
		}
	}
	return nil
}
