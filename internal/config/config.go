package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wordquiz/internal/domain"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Storage backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken    string        `envconfig:"BOT_TOKEN"`
	Backend     string        `envconfig:"STORAGE_BACKEND" default:"file"`
	WordsFile   string        `envconfig:"WORDS_FILE" default:"words.json"`
	PollTimeout time.Duration `envconfig:"POLL_TIMEOUT" default:"10s"`
	Debug       bool          `envconfig:"LOG_DEBUG"`
	Database    DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"wordquiz"`
	User     string `envconfig:"DB_USER" default:"wordquiz"`
	Password string `envconfig:"DB_PASSWORD"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &domain.ConfigError{Err: err}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return &domain.ConfigError{Key: "BOT_TOKEN", Err: errors.New("is required")}
	}

	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendFile:
		if strings.TrimSpace(c.WordsFile) == "" {
			return &domain.ConfigError{Key: "WORDS_FILE", Err: errors.New("must not be empty")}
		}
	case BackendPostgres:
		if c.Database.Password == "" {
			return &domain.ConfigError{Key: "DB_PASSWORD", Err: errors.New("is required for postgres backend")}
		}
	default:
		return &domain.ConfigError{
			Key: "STORAGE_BACKEND",
			Err: fmt.Errorf("invalid value %q; allowed: file, postgres", c.Backend),
		}
	}

	if c.PollTimeout <= 0 {
		return &domain.ConfigError{Key: "POLL_TIMEOUT", Err: errors.New("must be positive")}
	}

	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
