package follow

import (
	"database/sql"
	"sync"
	"time"
)

// Record is one followed summoner for one guild. The same summoner followed
// from two different guilds yields two independent records.
type Record struct {
	PUUID       string `json:"puuid"`
	SummonerID  string `json:"summoner_id"`
	GameName    string `json:"game_name"`
	TagLine     string `json:"tag_line"`
	Region      string `json:"region"`
	LastMatchID string `json:"last_match_id"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
	ChannelID   string `json:"channel_id"`
	GuildID     string `json:"guild_id"`
}

// Expired reports whether the follow window has elapsed at the given instant.
func (r *Record) Expired(now time.Time) bool {
	return now.Unix() > r.ExpiresAt
}

// SummonerStats is the per-guild aggregate of matches the watcher has
// notified about for one summoner.
type SummonerStats struct {
	PUUID           string `json:"puuid"`
	GuildID         string `json:"guild_id"`
	GameName        string `json:"game_name"`
	MatchesNotified int    `json:"matches_notified"`
	Wins            int    `json:"wins"`
	Losses          int    `json:"losses"`
	Kills           int    `json:"kills"`
	Deaths          int    `json:"deaths"`
	Assists         int    `json:"assists"`
}

// store handles all database operations for follow records.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
