package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultSearchLocale    = "pt-BR"
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	// AuthSecret enables the bearer-token gate when non-empty.
	AuthSecret  string
	SeedFile    string
	CORSOrigins []string
	// MaxPageSize caps the attendee page size. Zero leaves it uncapped.
	MaxPageSize     int
	SearchLocale    string
	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the variables come from the process environment only.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            os.Getenv("PORT"),
		AuthSecret:      os.Getenv("AUTH_SECRET"),
		SeedFile:        os.Getenv("SEED_FILE"),
		CORSOrigins:     parseCSV(os.Getenv("CORS_ORIGINS")),
		SearchLocale:    os.Getenv("SEARCH_LOCALE"),
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.SearchLocale == "" {
		cfg.SearchLocale = defaultSearchLocale
	}
	if s := os.Getenv("MAX_PAGE_SIZE"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			log.Printf("Warning: ignoring invalid MAX_PAGE_SIZE %q", s)
		} else {
			cfg.MaxPageSize = v
		}
	}
	if s := os.Getenv("SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			log.Printf("Warning: ignoring invalid SHUTDOWN_TIMEOUT %q", s)
		} else {
			cfg.ShutdownTimeout = d
		}
	}

	return cfg, nil
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
