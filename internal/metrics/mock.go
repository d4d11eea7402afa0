package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	watcherPasses      int
	followsChecked     int
	followsExpired     int
	matchesDetected    int
	passDurations      []float64
	discordNotifSent   int
	discordNotifFailed int
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		passDurations: make([]float64, 0),
	}
}

func (m *Mock) IncWatcherPasses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watcherPasses++
}

func (m *Mock) IncFollowsChecked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.followsChecked++
}

func (m *Mock) IncFollowsExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.followsExpired++
}

func (m *Mock) IncMatchesDetected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesDetected++
}

func (m *Mock) ObservePassDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passDurations = append(m.passDurations, duration)
}

func (m *Mock) IncDiscordNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discordNotifSent++
}

func (m *Mock) IncDiscordNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discordNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// WatcherPasses returns the number of times IncWatcherPasses was called.
func (m *Mock) WatcherPasses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.watcherPasses
}

// FollowsChecked returns the number of times IncFollowsChecked was called.
func (m *Mock) FollowsChecked() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.followsChecked
}

// FollowsExpired returns the number of times IncFollowsExpired was called.
func (m *Mock) FollowsExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.followsExpired
}

// MatchesDetected returns the number of times IncMatchesDetected was called.
func (m *Mock) MatchesDetected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesDetected
}

// DiscordNotifSent returns the number of times IncDiscordNotifSent was called.
func (m *Mock) DiscordNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.discordNotifSent
}

// DiscordNotifFailed returns the number of times IncDiscordNotifFailed was called.
func (m *Mock) DiscordNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.discordNotifFailed
}
