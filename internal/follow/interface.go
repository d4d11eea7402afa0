package follow

// Store defines the interface for interacting with follow records.
type Store interface {
	Upsert(rec *Record) error
	ListAll() ([]*Record, error)
	ListByGuild(guildID string) ([]*Record, error)
	Get(puuid, guildID string) (*Record, error)
	UpdateLastMatch(puuid, guildID, matchID string) error
	Delete(puuid, guildID string) error
	AddMatchResult(puuid, guildID, gameName string, win bool, kills, deaths, assists int) error
	GetStats(guildID string) ([]SummonerStats, error)
	Clear()
}
