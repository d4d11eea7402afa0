package riot

import "context"

// Client defines the interface for interacting with the Riot Games API.
// This allows for mock implementations to be used in tests.
type Client interface {
	GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error)
	GetSummonerByPUUID(ctx context.Context, platform, puuid string) (*Summoner, error)
	GetMatchIDs(ctx context.Context, platform, puuid string, count int) ([]string, error)
	GetMatch(ctx context.Context, platform, matchID string) (*Match, error)
}
