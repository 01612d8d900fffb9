package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server configuration
	Addr           string
	Environment    string
	TrustedProxies []string

	// Storage configuration
	DBPath    string
	MediaRoot string
	Seed      bool

	// Session configuration
	SessionTTL   time.Duration
	CookieSecure bool
}

func Load() *Config {
	return &Config{
		Addr:           getEnv("ADDR", ":8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		TrustedProxies: getList("TRUSTED_PROXIES", []string{"127.0.0.1", "::1"}),

		DBPath:    getEnv("DB_PATH", "ticketing.db"),
		MediaRoot: getEnv("MEDIA_ROOT", "media"),
		Seed:      getBool("SEED_DATA", false),

		SessionTTL:   getDuration("SESSION_TTL", 30*24*time.Hour),
		CookieSecure: getBool("COOKIE_SECURE", true),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
