package notifier

import (
	"sync"

	"riftwatch/internal/summary"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spy for SendMatchNotification
	SendMatchNotificationFunc func(channelID, playerName string, sum *summary.MatchSummary, dryRun bool) error

	// Call records
	SendMatchNotificationCalls []SendMatchNotificationCall
}

// SendMatchNotificationCall holds the arguments for a call to SendMatchNotification.
type SendMatchNotificationCall struct {
	ChannelID  string
	PlayerName string
	Summary    *summary.MatchSummary
	DryRun     bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchNotificationCalls = nil
}

func (m *Mock) SendMatchNotification(channelID, playerName string, sum *summary.MatchSummary, dryRun bool) error {
	m.mu.Lock()
	m.SendMatchNotificationCalls = append(m.SendMatchNotificationCalls, SendMatchNotificationCall{
		ChannelID:  channelID,
		PlayerName: playerName,
		Summary:    sum,
		DryRun:     dryRun,
	})
	fn := m.SendMatchNotificationFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(channelID, playerName, sum, dryRun)
	}
	return nil
}
