package riot

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetAccountByRiotIDFunc func(ctx context.Context, gameName, tagLine string) (*Account, error)
	GetSummonerByPUUIDFunc func(ctx context.Context, platform, puuid string) (*Summoner, error)
	GetMatchIDsFunc        func(ctx context.Context, platform, puuid string, count int) ([]string, error)
	GetMatchFunc           func(ctx context.Context, platform, matchID string) (*Match, error)

	// Call records
	GetAccountByRiotIDCalls []struct{ GameName, TagLine string }
	GetSummonerByPUUIDCalls []struct{ Platform, PUUID string }
	GetMatchIDsCalls        []struct {
		Platform, PUUID string
		Count           int
	}
	GetMatchCalls []struct{ Platform, MatchID string }
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAccountByRiotIDCalls = nil
	m.GetSummonerByPUUIDCalls = nil
	m.GetMatchIDsCalls = nil
	m.GetMatchCalls = nil
}

func (m *MockClient) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	m.mu.Lock()
	m.GetAccountByRiotIDCalls = append(m.GetAccountByRiotIDCalls, struct{ GameName, TagLine string }{gameName, tagLine})
	fn := m.GetAccountByRiotIDFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, gameName, tagLine)
	}
	return &Account{PUUID: "mock-puuid", GameName: gameName, TagLine: tagLine}, nil
}

func (m *MockClient) GetSummonerByPUUID(ctx context.Context, platform, puuid string) (*Summoner, error) {
	m.mu.Lock()
	m.GetSummonerByPUUIDCalls = append(m.GetSummonerByPUUIDCalls, struct{ Platform, PUUID string }{platform, puuid})
	fn := m.GetSummonerByPUUIDFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, platform, puuid)
	}
	return &Summoner{ID: "mock-summoner-id", PUUID: puuid}, nil
}

func (m *MockClient) GetMatchIDs(ctx context.Context, platform, puuid string, count int) ([]string, error) {
	m.mu.Lock()
	m.GetMatchIDsCalls = append(m.GetMatchIDsCalls, struct {
		Platform, PUUID string
		Count           int
	}{platform, puuid, count})
	fn := m.GetMatchIDsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, platform, puuid, count)
	}
	return []string{}, nil
}

func (m *MockClient) GetMatch(ctx context.Context, platform, matchID string) (*Match, error) {
	m.mu.Lock()
	m.GetMatchCalls = append(m.GetMatchCalls, struct{ Platform, MatchID string }{platform, matchID})
	fn := m.GetMatchFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, platform, matchID)
	}
	return &Match{}, nil
}
