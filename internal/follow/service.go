package follow

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"riftwatch/internal/riot"
)

const (
	// MinFollowHours and MaxFollowHours bound the follow window a user may
	// request. The cap keeps a forgotten follow from polling forever.
	MinFollowHours = 1
	MaxFollowHours = 48
)

// Service implements the follow lifecycle: resolving a riot id to a player,
// seeding the baseline match id and creating or refreshing the record.
type Service struct {
	store Store
	riot  riot.Client
}

// NewService creates a new follow Service.
func NewService(store Store, riotClient riot.Client) *Service {
	return &Service{
		store: store,
		riot:  riotClient,
	}
}

// Request describes a follow request as it arrives from the outside.
type Request struct {
	GameName  string `json:"game_name"`
	TagLine   string `json:"tag_line"`
	Region    string `json:"region"` // platform routing value, e.g. euw1
	Hours     int    `json:"hours"`
	ChannelID string `json:"channel_id"`
	GuildID   string `json:"guild_id"`
}

// Follow resolves the requested player and creates or refreshes the follow
// record for (player, guild). Following an already-followed player from the
// same guild extends the window in place instead of creating a duplicate.
func (s *Service) Follow(ctx context.Context, req Request) (*Record, error) {
	if req.Hours < MinFollowHours || req.Hours > MaxFollowHours {
		return nil, fmt.Errorf("please enter a time between %d and %d hours", MinFollowHours, MaxFollowHours)
	}
	if !riot.IsValidPlatform(req.Region) {
		return nil, fmt.Errorf("unknown region %q", req.Region)
	}
	if req.GuildID == "" || req.ChannelID == "" {
		return nil, fmt.Errorf("guild_id and channel_id are required")
	}

	account, err := s.riot.GetAccountByRiotID(ctx, req.GameName, req.TagLine)
	if err != nil {
		return nil, fmt.Errorf("could not resolve %s#%s: %w", req.GameName, req.TagLine, err)
	}

	summoner, err := s.riot.GetSummonerByPUUID(ctx, req.Region, account.PUUID)
	if err != nil {
		return nil, fmt.Errorf("could not resolve summoner on %s: %w", req.Region, err)
	}

	// Seed the baseline so the follow only reports matches played from now on.
	lastMatchID := ""
	ids, err := s.riot.GetMatchIDs(ctx, req.Region, account.PUUID, 1)
	if err != nil {
		log.Warn("Could not seed baseline match id, first completed match will be reported", "puuid", account.PUUID, "error", err)
	} else if len(ids) > 0 {
		lastMatchID = ids[0]
	}

	rec := &Record{
		PUUID:       account.PUUID,
		SummonerID:  summoner.ID,
		GameName:    account.GameName,
		TagLine:     account.TagLine,
		Region:      req.Region,
		LastMatchID: lastMatchID,
		ExpiresAt:   time.Now().Add(time.Duration(req.Hours) * time.Hour).Unix(),
		ChannelID:   req.ChannelID,
		GuildID:     req.GuildID,
	}

	if err := s.store.Upsert(rec); err != nil {
		return nil, fmt.Errorf("failed to save follow: %w", err)
	}

	log.Info("Following summoner", "name", rec.GameName, "tag", rec.TagLine, "region", rec.Region, "guildID", rec.GuildID, "hours", req.Hours)
	return rec, nil
}

// Unfollow removes the follow for a riot id within one guild.
func (s *Service) Unfollow(ctx context.Context, gameName, tagLine, guildID string) error {
	account, err := s.riot.GetAccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		return fmt.Errorf("could not resolve %s#%s: %w", gameName, tagLine, err)
	}
	if err := s.store.Delete(account.PUUID, guildID); err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	log.Info("Unfollowed summoner", "name", gameName, "tag", tagLine, "guildID", guildID)
	return nil
}

// List returns the follows created from one guild.
func (s *Service) List(guildID string) ([]*Record, error) {
	return s.store.ListByGuild(guildID)
}
