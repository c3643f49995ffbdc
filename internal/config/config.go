package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Data source selectors. Live talks to the platform backend; demo serves the
// embedded fixture set.
const (
	SourceLive = "live"
	SourceDemo = "demo"
)

// Config holds application configuration values.
type Config struct {
	AppPort         string
	UpstreamBaseURL string
	UpstreamToken   string
	JWTSecret       string
	AdminEmail      string
	AdminPassword   string
	TokenExpires    time.Duration
	DataSource      string
	RequestTimeout  time.Duration
	LogLevel        string
	BadgeManifest   string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:5000"),
		UpstreamToken:   getEnv("UPSTREAM_ADMIN_TOKEN", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		AdminEmail:      getEnv("CONSOLE_ADMIN_EMAIL", "admin@feastly.example"),
		AdminPassword:   getEnv("CONSOLE_ADMIN_PASSWORD", ""),
		TokenExpires:    getEnvDuration("JWT_TTL_HOURS", 24) * time.Hour,
		DataSource:      getEnv("DATA_SOURCE", SourceDemo),
		RequestTimeout:  getEnvDuration("UPSTREAM_TIMEOUT_SECONDS", 10) * time.Second,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		BadgeManifest:   getEnv("BADGE_MANIFEST", ""),
	}

	if cfg.DataSource != SourceLive && cfg.DataSource != SourceDemo {
		log.Fatalf("DATA_SOURCE must be %q or %q, got %q", SourceLive, SourceDemo, cfg.DataSource)
	}

	if cfg.DataSource == SourceLive && cfg.UpstreamToken == "" {
		log.Fatal("UPSTREAM_ADMIN_TOKEN must be set when DATA_SOURCE=live")
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	if cfg.DataSource == SourceLive && cfg.AdminPassword == "" {
		log.Fatal("CONSOLE_ADMIN_PASSWORD must be set when DATA_SOURCE=live")
	}

	// Demo installs get a throwaway credential so the console works out of
	// the box.
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "demo"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}
