package follow

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertFunc          func(rec *Record) error
	ListAllFunc         func() ([]*Record, error)
	ListByGuildFunc     func(guildID string) ([]*Record, error)
	GetFunc             func(puuid, guildID string) (*Record, error)
	UpdateLastMatchFunc func(puuid, guildID, matchID string) error
	DeleteFunc          func(puuid, guildID string) error
	AddMatchResultFunc  func(puuid, guildID, gameName string, win bool, kills, deaths, assists int) error
	GetStatsFunc        func(guildID string) ([]SummonerStats, error)

	// Call records
	UpsertCalls          []*Record
	UpdateLastMatchCalls []struct{ PUUID, GuildID, MatchID string }
	DeleteCalls          []struct{ PUUID, GuildID string }
	AddMatchResultCalls  []struct {
		PUUID, GuildID, GameName string
		Win                      bool
		Kills, Deaths, Assists   int
	}
	ClearCalls int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls = nil
	m.UpdateLastMatchCalls = nil
	m.DeleteCalls = nil
	m.AddMatchResultCalls = nil
	m.ClearCalls = 0
}

func (m *MockStore) Upsert(rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls = append(m.UpsertCalls, rec)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(rec)
	}
	return nil
}

func (m *MockStore) ListAll() ([]*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListAllFunc != nil {
		return m.ListAllFunc()
	}
	return []*Record{}, nil
}

func (m *MockStore) ListByGuild(guildID string) ([]*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListByGuildFunc != nil {
		return m.ListByGuildFunc(guildID)
	}
	return []*Record{}, nil
}

func (m *MockStore) Get(puuid, guildID string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(puuid, guildID)
	}
	return &Record{PUUID: puuid, GuildID: guildID}, nil
}

func (m *MockStore) UpdateLastMatch(puuid, guildID, matchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateLastMatchCalls = append(m.UpdateLastMatchCalls, struct{ PUUID, GuildID, MatchID string }{puuid, guildID, matchID})
	if m.UpdateLastMatchFunc != nil {
		return m.UpdateLastMatchFunc(puuid, guildID, matchID)
	}
	return nil
}

func (m *MockStore) Delete(puuid, guildID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, struct{ PUUID, GuildID string }{puuid, guildID})
	if m.DeleteFunc != nil {
		return m.DeleteFunc(puuid, guildID)
	}
	return nil
}

func (m *MockStore) AddMatchResult(puuid, guildID, gameName string, win bool, kills, deaths, assists int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddMatchResultCalls = append(m.AddMatchResultCalls, struct {
		PUUID, GuildID, GameName string
		Win                      bool
		Kills, Deaths, Assists   int
	}{puuid, guildID, gameName, win, kills, deaths, assists})
	if m.AddMatchResultFunc != nil {
		return m.AddMatchResultFunc(puuid, guildID, gameName, win, kills, deaths, assists)
	}
	return nil
}

func (m *MockStore) GetStats(guildID string) ([]SummonerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(guildID)
	}
	return []SummonerStats{}, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
}
