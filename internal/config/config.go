package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

type Config struct {
	Port            string
	Environment     string
	LogLevel        slog.Level
	DataDir         string
	RedisURL        string
	ContentCacheTTL time.Duration
	DefaultLanguage language.Tag
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DataDir:         getEnv("DATA_DIR", "./data"),
		RedisURL:        getEnv("REDIS_URL", "localhost:6379"),
		ContentCacheTTL: parseTTL(getEnv("CONTENT_CACHE_TTL", "0")),
		DefaultLanguage: parseLanguage(getEnv("DEFAULT_LANGUAGE", "en")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// parseTTL reads a Go duration string; "0" or garbage disables the
// content cache.
func parseTTL(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

func parseLanguage(value string) language.Tag {
	tag, err := language.Parse(value)
	if err != nil {
		return language.English
	}
	return tag
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
