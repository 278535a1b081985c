package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPPort        string
	RedisAddr       string
	KafkaBroker     string
	KafkaTopic      string
	KafkaGroupID    string
	BackendBaseURL  string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPPort:        envOrDefault("PORT", "3000"),
		RedisAddr:       envOrDefault("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:     envOrDefault("KAFKA_BROKER", "localhost:9092"),
		KafkaTopic:      envOrDefault("KAFKA_TOPIC", "catalog.events"),
		KafkaGroupID:    envOrDefault("KAFKA_GROUP_ID", "storefront-catalog"),
		BackendBaseURL:  envOrDefault("BACKEND_BASE_URL", "http://localhost:8000/api"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
