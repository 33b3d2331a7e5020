package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN string
	ListenAddr  string
	Seed        bool
}

// Load reads configuration from the environment, with a .env file as an
// optional overlay for local development.
func Load() *Config {
	// a missing .env file is fine, plain environment variables still apply
	_ = godotenv.Load()

	return &Config{
		DatabaseDSN: getEnv("CATALOG_DB_DSN",
			"host=localhost user=postgres password=postgres dbname=catalog port=5432 sslmode=disable"),
		ListenAddr: getEnv("CATALOG_LISTEN_ADDR", ":8081"),
		Seed:       getEnv("CATALOG_SEED", "true") == "true",
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); len(value) > 0 {
		return value
	}
	return fallback
}
