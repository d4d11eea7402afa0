package watcher

import (
	"time"

	"riftwatch/internal/metrics"
	"riftwatch/internal/pubsub"
	"riftwatch/internal/riot"
)

// Watcher periodically checks followed summoners for newly completed matches.
type Watcher struct {
	store    Store
	riot     riot.Client
	notifier Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
	interval time.Duration
}

// MatchEvent is the payload published when a new match is detected for a follow.
type MatchEvent struct {
	PUUID    string
	GuildID  string
	GameName string
	MatchID  string
	Win      bool
	Kills    int
	Deaths   int
	Assists  int
}

// ExpiryEvent is the payload published when a follow reaches its expiry and is removed.
type ExpiryEvent struct {
	PUUID    string
	GuildID  string
	GameName string
}
