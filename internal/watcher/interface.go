package watcher

import (
	"riftwatch/internal/follow"
	"riftwatch/internal/notifier"
)

// Store defines the database operations required by the watcher.
type Store interface {
	ListAll() ([]*follow.Record, error)
	UpdateLastMatch(puuid, guildID, matchID string) error
	Delete(puuid, guildID string) error
}

// Notifier defines the notification operations required by the watcher.
// This is an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
