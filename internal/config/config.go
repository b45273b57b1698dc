package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Port string
	}
	Mongo struct {
		URI     string
		DBName  string
		Timeout time.Duration
	}
}

// Load reads configuration from the environment, optionally seeding it from a
// .env file first. MONGO_URI and MONGO_DB are required.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}

	cfg.App.Port = os.Getenv("APP_PORT")
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}

	cfg.Mongo.URI = os.Getenv("MONGO_URI")
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	cfg.Mongo.DBName = os.Getenv("MONGO_DB")
	if cfg.Mongo.DBName == "" {
		return nil, fmt.Errorf("MONGO_DB is required")
	}

	cfg.Mongo.Timeout = 10 * time.Second
	if raw := os.Getenv("MONGO_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("MONGO_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}
		cfg.Mongo.Timeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
