// Package config loads process configuration from the environment so main
// stays lean.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	DatabaseURL   string
	RedisURL      string
	KafkaBrokers  []string
	AuditTopic    string
	JWTSigningKey string
	// StaffSecretHash is the bcrypt hash of the shared staff secret; when
	// empty the token issuance endpoint is not registered.
	StaffSecretHash string
	LogLevel        slog.Level
	CacheTTL        time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:            getenv("ROLLBOOK_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("ROLLBOOK_DATABASE_URL"),
		RedisURL:        os.Getenv("ROLLBOOK_REDIS_URL"),
		AuditTopic:      getenv("ROLLBOOK_AUDIT_TOPIC", "rollbook.audit"),
		JWTSigningKey:   getenv("ROLLBOOK_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		StaffSecretHash: os.Getenv("ROLLBOOK_STAFF_SECRET_HASH"),
		LogLevel:        parseLevel(os.Getenv("ROLLBOOK_LOG_LEVEL")),
		CacheTTL:        parseDuration(os.Getenv("ROLLBOOK_CACHE_TTL"), 30*time.Second),
	}
	if brokers := os.Getenv("ROLLBOOK_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
