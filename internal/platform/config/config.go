package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Database captures the relational store configuration.
type Database struct {
	URL string
}

// RedisConfig captures the shared attempt-counter backend. An empty URL
// disables Redis and falls back to in-process counting.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Kafka captures the audit event broker. Empty brokers disable Kafka and
// keep the audit trail in Postgres only.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Registration captures pipeline tunables.
type Registration struct {
	MaxAttempts    int64
	AttemptWindow  time.Duration
	AuditBuffer    int
	EventQueueSize int
}

type Config struct {
	Server       Server
	Database     Database
	Redis        RedisConfig
	Kafka        Kafka
	Registration Registration
}

// FromEnv builds the full configuration from environment variables so main
// stays lean.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:            envOr("SOKONI_ADDR", ":8080"),
			ShutdownTimeout: envDuration("SOKONI_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: Database{
			URL: os.Getenv("SOKONI_DATABASE_URL"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("SOKONI_REDIS_URL"),
			PoolSize:     envInt("SOKONI_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("SOKONI_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("SOKONI_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("SOKONI_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("SOKONI_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: Kafka{
			Brokers: splitNonEmpty(os.Getenv("SOKONI_KAFKA_BROKERS")),
			Topic:   envOr("SOKONI_KAFKA_AUDIT_TOPIC", "sokoni.audit"),
		},
		Registration: Registration{
			MaxAttempts:    int64(envInt("SOKONI_REGISTRATION_MAX_ATTEMPTS", 5)),
			AttemptWindow:  envDuration("SOKONI_REGISTRATION_ATTEMPT_WINDOW", 15*time.Minute),
			AuditBuffer:    envInt("SOKONI_AUDIT_BUFFER", 256),
			EventQueueSize: envInt("SOKONI_EVENT_QUEUE_SIZE", 256),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
