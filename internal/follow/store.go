package follow

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new Store backed by the given database.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// Upsert inserts a new follow record or refreshes an existing one for the
// same (puuid, guild) pair. Re-following extends expires_at and moves the
// notification channel, but never touches last_match_id so an already
// reported match is not reported again.
func (s *store) Upsert(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO follows (puuid, guild_id, summoner_id, game_name, tag_line, region, last_match_id, expires_at, channel_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(puuid, guild_id) DO UPDATE SET
			summoner_id = excluded.summoner_id,
			game_name = excluded.game_name,
			tag_line = excluded.tag_line,
			region = excluded.region,
			expires_at = excluded.expires_at,
			channel_id = excluded.channel_id;
	`, rec.PUUID, rec.GuildID, rec.SummonerID, rec.GameName, rec.TagLine, rec.Region, rec.LastMatchID, rec.ExpiresAt, rec.ChannelID)
	return err
}

const recordColumns = "puuid, guild_id, summoner_id, game_name, tag_line, region, last_match_id, expires_at, channel_id"

// ListAll retrieves every follow record. Rows that fail to scan are logged
// and skipped so one bad document does not poison a whole pass.
func (s *store) ListAll() ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + recordColumns + " FROM follows")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.scanRecords(rows), rows.Err()
}

// ListByGuild retrieves the follow records created from one guild.
func (s *store) ListByGuild(guildID string) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT "+recordColumns+" FROM follows WHERE guild_id = ?", guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.scanRecords(rows), rows.Err()
}

func (s *store) scanRecords(rows *sql.Rows) []*Record {
	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			log.Error("Failed to scan follow row", "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

func scanRecord(scanner interface{ Scan(...any) error }) (*Record, error) {
	var rec Record
	err := scanner.Scan(
		&rec.PUUID, &rec.GuildID, &rec.SummonerID, &rec.GameName, &rec.TagLine,
		&rec.Region, &rec.LastMatchID, &rec.ExpiresAt, &rec.ChannelID,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Get retrieves a single follow record.
func (s *store) Get(puuid, guildID string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT "+recordColumns+" FROM follows WHERE puuid = ? AND guild_id = ?", puuid, guildID)
	rec, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("follow for %s in guild %s not found", puuid, guildID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return rec, nil
}

// UpdateLastMatch overwrites the stored last-seen match id for one record.
func (s *store) UpdateLastMatch(puuid, guildID, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE follows SET last_match_id = ? WHERE puuid = ? AND guild_id = ?", matchID, puuid, guildID)
	return err
}

// Delete removes one follow record. Records for the same summoner in other
// guilds are untouched.
func (s *store) Delete(puuid, guildID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM follows WHERE puuid = ? AND guild_id = ?", puuid, guildID)
	return err
}

// AddMatchResult folds one notified match into the summoner's aggregate stats.
func (s *store) AddMatchResult(puuid, guildID, gameName string, win bool, kills, deaths, assists int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wins, losses := 0, 1
	if win {
		wins, losses = 1, 0
	}

	_, err := s.db.Exec(`
		INSERT INTO summoner_stats (puuid, guild_id, game_name, matches_notified, wins, losses, kills, deaths, assists)
		VALUES (?, ?, ?, 1, ?, ?, ?, ?, ?)
		ON CONFLICT(puuid, guild_id) DO UPDATE SET
			game_name = excluded.game_name,
			matches_notified = matches_notified + 1,
			wins = wins + excluded.wins,
			losses = losses + excluded.losses,
			kills = kills + excluded.kills,
			deaths = deaths + excluded.deaths,
			assists = assists + excluded.assists;
	`, puuid, guildID, gameName, wins, losses, kills, deaths, assists)
	return err
}

// GetStats retrieves the aggregate stats for a guild, most active first.
func (s *store) GetStats(guildID string) ([]SummonerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT puuid, guild_id, game_name, matches_notified, wins, losses, kills, deaths, assists
		FROM summoner_stats
		WHERE guild_id = ?
		ORDER BY matches_notified DESC, wins DESC
	`, guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []SummonerStats
	for rows.Next() {
		var st SummonerStats
		err := rows.Scan(
			&st.PUUID, &st.GuildID, &st.GameName, &st.MatchesNotified,
			&st.Wins, &st.Losses, &st.Kills, &st.Deaths, &st.Assists,
		)
		if err != nil {
			log.Error("Failed to scan summoner stats row", "error", err)
			continue
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// Clear wipes all follow records and stats. Used by the /clear endpoint.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	if _, err = tx.Exec("DELETE FROM follows"); err != nil {
		log.Error("Failed to clear follows table", "error", err)
		tx.Rollback()
		return
	}

	if _, err = tx.Exec("DELETE FROM summoner_stats"); err != nil {
		log.Error("Failed to clear summoner_stats table", "error", err)
		tx.Rollback()
		return
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}
