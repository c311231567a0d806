package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("UNO_TOKEN_SECRET", "secret")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "uno", cfg.DB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.MaxPlayers)
	assert.Equal(t, 2, cfg.MinPlayers)
	assert.Equal(t, 7, cfg.HandSize)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.local")
	content := "UNO_PORT=9876\nUNO_DB=uno_test\nUNO_TOKEN_SECRET=from-file\nUNO_TOKEN_TTL=30m\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("UNO_HAND_SIZE", "5")
	// godotenv.Load leaves these behind in the process environment.
	for _, k := range []string{"UNO_PORT", "UNO_DB", "UNO_TOKEN_SECRET", "UNO_TOKEN_TTL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9876", cfg.Port)
	assert.Equal(t, "uno_test", cfg.DB)
	assert.Equal(t, "from-file", cfg.TokenSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.HandSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		description string
		env         map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"one player minimum", map[string]string{"UNO_TOKEN_SECRET": "s", "UNO_MIN_PLAYERS": "1"}},
		{"cap below minimum", map[string]string{"UNO_TOKEN_SECRET": "s", "UNO_MAX_PLAYERS": "3", "UNO_MIN_PLAYERS": "4"}},
		{"hands exceed deck", map[string]string{"UNO_TOKEN_SECRET": "s", "UNO_MAX_PLAYERS": "10", "UNO_HAND_SIZE": "11"}},
		{"bad number", map[string]string{"UNO_TOKEN_SECRET": "s", "UNO_HAND_SIZE": "seven"}},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			t.Setenv("UNO_TOKEN_SECRET", "")
			os.Unsetenv("UNO_TOKEN_SECRET")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
