package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"riftwatch/internal/follow"
	"riftwatch/internal/metrics"
	"riftwatch/internal/pubsub"
	"riftwatch/internal/riot"
	"riftwatch/internal/summary"
)

// New creates a new Watcher.
func New(store Store, riotClient riot.Client, notifier Notifier, metrics metrics.Metrics, pubsubClient pubsub.PubSubClient, interval time.Duration) *Watcher {
	return &Watcher{
		store:    store,
		riot:     riotClient,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsubClient,
		interval: interval,
	}
}

// Start begins the polling loop. It runs an initial pass immediately and then
// one pass per tick until the context is cancelled. Passes run inline, so a
// slow pass delays the next one rather than overlapping it.
func (w *Watcher) Start(ctx context.Context) {
	log.Info("Starting watcher", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunPass(ctx, false)

	for {
		select {
		case <-ctx.Done():
			log.Info("Watcher stopped", "reason", ctx.Err())
			return
		case <-ticker.C:
			w.RunPass(ctx, false)
		}
	}
}

// RunPass checks every follow record once. A failure to enumerate records
// aborts the pass; a failure on a single record never affects the others.
func (w *Watcher) RunPass(ctx context.Context, dryRun bool) {
	passID := uuid.NewString()
	start := time.Now()
	w.metrics.IncWatcherPasses()

	records, err := w.store.ListAll()
	if err != nil {
		log.Error("Failed to list follow records, skipping pass", "error", err, "passID", passID)
		return
	}

	if len(records) == 0 {
		log.Debug("No follow records to check", "passID", passID)
		return
	}

	log.Info("Starting watcher pass", "passID", passID, "records", len(records))
	now := time.Now()
	for _, rec := range records {
		w.processRecord(ctx, rec, now, dryRun)
		w.metrics.IncFollowsChecked()
	}

	duration := time.Since(start)
	w.metrics.ObservePassDuration(duration.Seconds())
	log.Info("Watcher pass finished", "passID", passID, "duration", duration)
}

func (w *Watcher) processRecord(ctx context.Context, rec *follow.Record, now time.Time, dryRun bool) {
	playerName := fmt.Sprintf("%s#%s", rec.GameName, rec.TagLine)

	if rec.Expired(now) {
		log.Info("Follow expired, removing", "player", playerName, "guildID", rec.GuildID)
		if dryRun {
			log.Info("[Dry Run] Would delete expired follow", "player", playerName, "guildID", rec.GuildID)
			return
		}
		if err := w.store.Delete(rec.PUUID, rec.GuildID); err != nil {
			log.Error("Failed to delete expired follow", "error", err, "player", playerName, "guildID", rec.GuildID)
			return
		}
		w.metrics.IncFollowsExpired()
		if err := w.pubsub.SendMessage(pubsub.EventFollowExpired, ExpiryEvent{
			PUUID:    rec.PUUID,
			GuildID:  rec.GuildID,
			GameName: rec.GameName,
		}); err != nil {
			log.Warn("Failed to publish expiry event", "error", err, "player", playerName)
		}
		return
	}

	matchIDs, err := w.riot.GetMatchIDs(ctx, rec.Region, rec.PUUID, 1)
	if err != nil {
		log.Error("Failed to fetch match ids", "error", err, "player", playerName, "region", rec.Region)
		return
	}
	if len(matchIDs) == 0 {
		log.Debug("No matches on record", "player", playerName)
		return
	}

	latest := matchIDs[0]
	if latest == rec.LastMatchID {
		return
	}

	match, err := w.riot.GetMatch(ctx, rec.Region, latest)
	if err != nil {
		log.Error("Failed to fetch match details", "error", err, "matchID", latest, "player", playerName)
		return
	}

	sum, err := summary.Build(match, rec.PUUID)
	if err != nil {
		log.Error("Failed to build match summary", "error", err, "matchID", latest, "player", playerName)
		return
	}

	w.metrics.IncMatchesDetected()
	log.Info("New match detected", "player", playerName, "matchID", latest, "result", sum.GameResult)

	// The stored match id advances before the notification goes out. A send
	// failure is logged and the match is not re-announced on the next pass.
	if !dryRun {
		if err := w.store.UpdateLastMatch(rec.PUUID, rec.GuildID, latest); err != nil {
			log.Error("Failed to update last match id", "error", err, "player", playerName, "matchID", latest)
			return
		}
	}

	if err := w.notifier.SendMatchNotification(rec.ChannelID, playerName, sum, dryRun); err != nil {
		log.Error("Failed to send match notification", "error", err, "player", playerName, "matchID", latest)
	}

	if !dryRun {
		if err := w.pubsub.SendMessage(pubsub.EventMatchDetected, MatchEvent{
			PUUID:    rec.PUUID,
			GuildID:  rec.GuildID,
			GameName: rec.GameName,
			MatchID:  latest,
			Win:      sum.Win,
			Kills:    sum.Player.Kills,
			Deaths:   sum.Player.Deaths,
			Assists:  sum.Player.Assists,
		}); err != nil {
			log.Warn("Failed to publish match event", "error", err, "player", playerName, "matchID", latest)
		}
	}
}
