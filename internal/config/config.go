package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Port        string        `env:"UNO_PORT" envDefault:"9000"`
	DB          string        `env:"UNO_DB" envDefault:"uno"`
	LogLevel    string        `env:"UNO_LOG_LEVEL" envDefault:"info"`
	MaxPlayers  int           `env:"UNO_MAX_PLAYERS" envDefault:"10"`
	MinPlayers  int           `env:"UNO_MIN_PLAYERS" envDefault:"2"`
	HandSize    int           `env:"UNO_HAND_SIZE" envDefault:"7"`
	TokenSecret string        `env:"UNO_TOKEN_SECRET,required"`
	TokenTTL    time.Duration `env:"UNO_TOKEN_TTL" envDefault:"24h"`
}

// Load reads the given .env files, skipping the ones that do not exist, and
// then parses the environment. Variables already set win over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.MinPlayers < 2:
		return fmt.Errorf("UNO_MIN_PLAYERS must be at least 2, got %d", c.MinPlayers)
	case c.MaxPlayers < c.MinPlayers:
		return fmt.Errorf("UNO_MAX_PLAYERS (%d) is below UNO_MIN_PLAYERS (%d)", c.MaxPlayers, c.MinPlayers)
	case c.HandSize < 1:
		return fmt.Errorf("UNO_HAND_SIZE must be positive, got %d", c.HandSize)
	case c.HandSize*c.MaxPlayers >= 108:
		return fmt.Errorf("a hand of %d for %d players does not fit one deck", c.HandSize, c.MaxPlayers)
	case c.TokenTTL <= 0:
		return fmt.Errorf("UNO_TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
}
