package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	PollInterval  time.Duration
	Riot          RiotConfig
	Discord       DiscordConfig
	Turso         TursoConfig
	ProjectID     string
}

type RiotConfig struct {
	APIKey string
}

type DiscordConfig struct {
	BotToken string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
