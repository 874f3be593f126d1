package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"reviewboard/internal/domain"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultMaxOpenConns    = "10"
	defaultMaxIdleConns    = "5"
	defaultConnMaxLifetime = "1h"
	defaultMaxPageSize     = "100"
	defaultDeletePolicy    = "restrict"
)

// Config is the full runtime configuration, read once at process start.
type Config struct {
	DatabaseURL     string
	HTTPAddr        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MaxPageSize     int
	DeletePolicy    domain.DeletePolicy
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)

	var err error
	cfg.MaxOpenConns, err = parseIntEnv("DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	if err != nil {
		return nil, err
	}
	cfg.MaxIdleConns, err = parseIntEnv("DB_MAX_IDLE_CONNS", defaultMaxIdleConns)
	if err != nil {
		return nil, err
	}
	cfg.ConnMaxLifetime, err = parseDurationEnv("DB_CONN_MAX_LIFETIME", defaultConnMaxLifetime)
	if err != nil {
		return nil, err
	}
	cfg.MaxPageSize, err = parseIntEnv("MAX_PAGE_SIZE", defaultMaxPageSize)
	if err != nil {
		return nil, err
	}
	if cfg.MaxPageSize <= 0 {
		return nil, fmt.Errorf("MAX_PAGE_SIZE must be positive")
	}

	cfg.DeletePolicy, err = domain.ParseDeletePolicy(getEnv("DELETE_POLICY", defaultDeletePolicy))
	if err != nil {
		return nil, fmt.Errorf("DELETE_POLICY: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, raw)
	}
	return v, nil
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return v, nil
}
