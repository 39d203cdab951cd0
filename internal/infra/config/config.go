package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env              string
	HTTPAddr         string
	StoreMode        string
	MongoURI         string
	MongoDB          string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	CatalogCacheTTL  time.Duration
	KafkaBrokers     []string
	KafkaTopicPrefix string
	SearchTimeout    time.Duration
	FixturesPath     string
}

// Load parses configuration from the current environment. Mongo, Redis and
// Kafka are all optional: memory mode serves fixtures without any backing
// service.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		StoreMode:        strings.ToLower(getEnv("STORE_MODE", "memory")),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "apexutravel"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
		FixturesPath:     getEnv("FIXTURES_PATH", ""),
	}

	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	redisDB, err := parseIntEnv("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.RedisDB = redisDB

	cacheTTL, err := parseDurationEnv("CATALOG_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.CatalogCacheTTL = cacheTTL

	searchTimeout, err := parseDurationEnv("SEARCH_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.SearchTimeout = searchTimeout

	switch cfg.StoreMode {
	case "memory":
	case "mongo":
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required when STORE_MODE=mongo")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORE_MODE %q (memory|mongo)", cfg.StoreMode)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseIntEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	var v int
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return 0, fmt.Errorf("invalid %s integer: %q", key, raw)
	}
	return v, nil
}
