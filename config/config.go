package config

import (
	"os"
	"strings"
)

type Config struct {
	Port           string
	DataDir        string
	DBURL          string
	AllowedOrigins []string
}

// Load reads configuration from the environment. When DB_URL is set the
// server uses the Postgres-backed store; otherwise collections live as JSON
// files under DataDir.
func Load() Config {
	cfg := Config{
		Port:    os.Getenv("PORT"),
		DataDir: os.Getenv("DATA_DIR"),
		DBURL:   os.Getenv("DB_URL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000,http://localhost:5173"
	}
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}
	return cfg
}
