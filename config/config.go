package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Assets   AssetsConfig
	Autosave AutosaveConfig
	Session  SessionConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
}

// DatabaseConfig covers the optional Postgres user mirror. Leave DSN empty
// to run without it.
type DatabaseConfig struct {
	DSN string
}

// RedisConfig covers the optional draft store. Leave Addr empty to run
// without crash-recoverable drafts (debounced saves still work).
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AssetsConfig struct {
	S3Bucket string
	S3Region string
	// BaseURL overrides the default S3 public URL (e.g. a CDN front).
	BaseURL string
}

type AutosaveConfig struct {
	Delay time.Duration
}

type SessionConfig struct {
	IdleTTL time.Duration
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Assets: AssetsConfig{
			S3Bucket: getEnv("ASSETS_S3_BUCKET", ""),
			S3Region: getEnv("ASSETS_S3_REGION", "us-east-1"),
			BaseURL:  getEnv("ASSETS_BASE_URL", ""),
		},
		Autosave: AutosaveConfig{
			Delay: time.Duration(getEnvAsInt("AUTOSAVE_DELAY_MS", 2000)) * time.Millisecond,
		},
		Session: SessionConfig{
			IdleTTL: time.Duration(getEnvAsInt("SESSION_IDLE_MINUTES", 30)) * time.Minute,
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	// In development the API can fall back to header-based identities, so
	// Firebase credentials are only enforced in production.
	if c.App.Environment == "production" && c.Firebase.CredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required in production")
	}

	if c.Autosave.Delay <= 0 {
		return fmt.Errorf("AUTOSAVE_DELAY_MS must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
