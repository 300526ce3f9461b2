package config

import "os"

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackTeamID        string
	DatabasePath       string
	Port               string
	TickTime           string // HH:MM UTC, when the daily scheduling tick fires
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackTeamID:        getEnv("SLACK_TEAM_ID", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./coffee_chats.db"),
		Port:               getEnv("PORT", "3000"),
		TickTime:           getEnv("TICK_TIME", "09:00"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
