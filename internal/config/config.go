package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	RedisURL    string

	JWTSecret      string
	AccessTokenTTL time.Duration

	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	UploadURL    string
	UploadPreset string

	FeedCacheEnabled bool

	Environment string
	LogLevel    string
	LogFormat   string

	BcryptCost int
}

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is required")
)

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AccessTokenTTL:   getEnvOrDefaultDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
		ServerPort:       getEnvOrDefault("SERVER_PORT", "8080"),
		ReadTimeout:      getEnvOrDefaultDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:     getEnvOrDefaultDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:      getEnvOrDefaultDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		UploadURL:        os.Getenv("UPLOAD_URL"),
		UploadPreset:     os.Getenv("UPLOAD_PRESET"),
		FeedCacheEnabled: getEnvOrDefaultBool("FEED_CACHE_ENABLED", true),
		Environment:      getEnvOrDefault("ENV", "development"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        getEnvOrDefault("LOG_FORMAT", "json"),
		BcryptCost:       getEnvOrDefaultInt("BCRYPT_COST", 0),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvOrDefaultInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvOrDefaultBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		// Plain integers are treated as seconds.
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
