// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// DefaultTitle is used for the experiment configuration row created at first
// boot when EXPERIMENT_TITLE is not set.
const DefaultTitle = "Ten Rounds Experiment"

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	RedisAddr     string
	SessionSecret string
	AdminKey      string
	Title         string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ten-rounds", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RedisAddr, "redis", "", "Redis address for session storage (empty = in-memory)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie signing secret (prefer env)")
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Shared admin key (prefer env; admin surface disabled when empty)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}

	// Session secret - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	// Admin key is intentionally optional: without one, every admin request
	// is rejected rather than the surface opening up.
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}

	cfg.Title = os.Getenv("EXPERIMENT_TITLE")
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}

	return cfg, nil
}
