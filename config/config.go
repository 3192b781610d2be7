package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	JWTSecret    string
	TokenTTL     time.Duration
	SweepEvery   time.Duration
}

// ParseFlags builds the configuration from CLI flags with environment
// variable fallback.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var sweepHours int

	fs := flag.NewFlagSet("dinnerpoll", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&sweepHours, "sweep-hours", 0, "Hours between retention sweeps")

	// Secret (prefer env variable, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Admin session token secret (prefer env)")

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
			cfg.Port = 8643 // default
		}
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

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			cfg.DatabaseURL = "file:dinner_poll.db?_pragma=busy_timeout(5000)"
		} else {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	if sweepHours == 0 {
		if hoursStr := os.Getenv("SWEEP_HOURS"); hoursStr != "" {
			hours, err := strconv.Atoi(hoursStr)
			if err != nil {
				return Config{}, errors.New("invalid SWEEP_HOURS env variable")
			}
			sweepHours = hours
		} else {
			sweepHours = 24
		}
	}
	cfg.SweepEvery = time.Duration(sweepHours) * time.Hour

	// Secret - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	cfg.TokenTTL = 12 * time.Hour

	return cfg, nil
}
