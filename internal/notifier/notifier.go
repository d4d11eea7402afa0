package notifier

import (
	"riftwatch/internal/summary"
)

// Notifier defines a high-level interface for sending notifications about detected matches.
// This decouples the rest of the application from the specific notification provider (e.g., Discord).
type Notifier interface {
	// For newly detected completed matches
	SendMatchNotification(channelID, playerName string, sum *summary.MatchSummary, dryRun bool) error
}
