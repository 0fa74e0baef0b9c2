package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment.
// It is built once in main and handed to the pieces that need it, the
// handlers never touch os.Getenv themselves.
type Config struct {
	Port        string
	DatabaseDSN string
	WebhookURL  string
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	return Config{
		Port:        envOrDefault("PORT", "5000"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		WebhookURL:  os.Getenv("WEBHOOK_URL"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
