package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultListenAddr      = ":8080"
	defaultDatabaseDSN     = "finishout.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTTTL          = "24h"
	defaultCodeLength      = "8"
	defaultCodeMaxAttempts = "10"
)

// Runtime is the process configuration, read once at startup from the
// environment (with a .env file honored for local development).
type Runtime struct {
	ListenAddr  string
	DatabaseDSN string

	JWTSecret string
	JWTTTL    time.Duration

	// Access-code generation: code length in characters and the bounded
	// number of collision retries before GenerateCode gives up.
	CodeLength      int
	CodeMaxAttempts int
}

func Load() (*Runtime, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Runtime{
		ListenAddr:  getEnv("LISTEN_ADDR", defaultListenAddr),
		DatabaseDSN: getEnv("DATABASE_URL", defaultDatabaseDSN),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.CodeLength, err = parseIntEnv("ACCESS_CODE_LENGTH", defaultCodeLength)
	if err != nil {
		return nil, err
	}
	cfg.CodeMaxAttempts, err = parseIntEnv("ACCESS_CODE_MAX_ATTEMPTS", defaultCodeMaxAttempts)
	if err != nil {
		return nil, err
	}

	if cfg.CodeLength < 4 {
		return nil, fmt.Errorf("ACCESS_CODE_LENGTH must be at least 4, got %d", cfg.CodeLength)
	}
	if cfg.CodeMaxAttempts < 1 {
		return nil, fmt.Errorf("ACCESS_CODE_MAX_ATTEMPTS must be at least 1, got %d", cfg.CodeMaxAttempts)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, raw, err)
	}
	return n, nil
}
