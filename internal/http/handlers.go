package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"riftwatch/internal/follow"
	"riftwatch/internal/watcher"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		s.Store.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

// FollowHandler creates or refreshes a follow for a player in a guild.
func (s *Server) FollowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req follow.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode follow request", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rec, err := s.FollowSvc.Follow(r.Context(), req)
		if err != nil {
			log.Error("Failed to create follow", "error", err, "gameName", req.GameName, "tagLine", req.TagLine)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(rec); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	}
}

// UnfollowHandler removes a follow for a player in a guild.
func (s *Server) UnfollowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			GameName string `json:"game_name"`
			TagLine  string `json:"tag_line"`
			GuildID  string `json:"guild_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode unfollow request", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := s.FollowSvc.Unfollow(r.Context(), req.GameName, req.TagLine, req.GuildID); err != nil {
			log.Error("Failed to unfollow", "error", err, "gameName", req.GameName, "tagLine", req.TagLine)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

// ListFollowsHandler lists the follow records for a guild, or all of them
// when no guild_id is given.
func (s *Server) ListFollowsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := r.URL.Query().Get("guild_id")

		var (
			records []*follow.Record
			err     error
		)
		if guildID != "" {
			records, err = s.Store.ListByGuild(guildID)
		} else {
			records, err = s.Store.ListAll()
		}
		if err != nil {
			http.Error(w, "Failed to get follows", http.StatusInternalServerError)
			log.Error("Failed to get follows from store", "error", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			log.Error("Failed to encode follows to JSON", "error", err)
		}
	}
}

// StatsHandler serves the per-guild summoner leaderboard.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := r.URL.Query().Get("guild_id")
		if guildID == "" {
			http.Error(w, "guild_id is required", http.StatusBadRequest)
			return
		}

		stats, err := s.Store.GetStats(guildID)
		if err != nil {
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			log.Error("Failed to get stats from store", "error", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			log.Error("Failed to encode stats to JSON", "error", err)
		}
	}
}

// CheckHandler triggers a single watcher pass on demand.
func (s *Server) CheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting manual watcher pass...")
		isDryRun := isDryRunFromContext(r)

		s.Watcher.RunPass(r.Context(), isDryRun)

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Watcher pass completed.")
		log.Info("Manual watcher pass finished.")
	}
}

// UpdateSummonerStatsHandler consumes match-detected push messages and folds
// the result into the per-guild summoner stats.
func (s *Server) UpdateSummonerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received update summoner stats message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		// Parse the outer JSON to get `data`
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r)
		event := watcher.MatchEvent{}
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		if isDryRun {
			log.Info("[Dry Run] Would update summoner stats", "puuid", event.PUUID, "matchID", event.MatchID)
			w.Write([]byte("OK"))
			return
		}

		if err := s.Store.AddMatchResult(event.PUUID, event.GuildID, event.GameName, event.Win, event.Kills, event.Deaths, event.Assists); err != nil {
			log.Error("Failed to update summoner stats", "error", err, "puuid", event.PUUID, "matchID", event.MatchID)
			http.Error(w, "Failed to update summoner stats", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
