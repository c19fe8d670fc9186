package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"wordquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so the host environment can't leak into tests
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "STORAGE_BACKEND", "WORDS_FILE", "POLL_TIMEOUT", "LOG_DEBUG",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE",
	} {
		// Setenv registers the restore, Unsetenv makes the key truly absent
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
			SSLMode:  "disable",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingBotToken(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")

	var cfgErr *domain.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "BOT_TOKEN", cfgErr.Key)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "words.json", cfg.WordsFile)
	assert.Equal(t, 10*time.Second, cfg.PollTimeout)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "wordquiz", cfg.Database.Name)
	assert.Equal(t, "wordquiz", cfg.Database.User)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		expectedKey string
	}{
		{
			name:        "unknown backend",
			env:         map[string]string{"STORAGE_BACKEND": "redis"},
			expectedKey: "STORAGE_BACKEND",
		},
		{
			name:        "postgres without password",
			env:         map[string]string{"STORAGE_BACKEND": "postgres"},
			expectedKey: "DB_PASSWORD",
		},
		{
			name:        "negative poll timeout",
			env:         map[string]string{"POLL_TIMEOUT": "-1s"},
			expectedKey: "POLL_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("BOT_TOKEN", "test_token")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Nil(t, cfg)

			var cfgErr *domain.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.expectedKey, cfgErr.Key)
		})
	}
}

func TestLoad_PostgresBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("STORAGE_BACKEND", "Postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
}
