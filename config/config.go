package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"power4/meta"

	"github.com/rs/zerolog"
)

// Config holds everything needed to start a session.
type Config struct {
	TickInterval   time.Duration // Time between two animation steps
	LogLevel       string
	LogFile        string // Empty discards logs; the terminal belongs to the UI
	Summary        bool   // Print finished games as CSV on exit
	PlayerOneColor string
	PlayerTwoColor string
}

func Default() *Config {
	return &Config{
		TickInterval:   meta.TICK_INTERVAL,
		LogLevel:       meta.LOG_LEVEL,
		PlayerOneColor: meta.PLAYER_ONE_COLOR,
		PlayerTwoColor: meta.PLAYER_TWO_COLOR,
	}
}

// Validate checks the fields that have no safe fallback.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if c.LogLevel == "" {
		return errors.New("log level cannot be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.PlayerOneColor == "" || c.PlayerTwoColor == "" {
		return errors.New("player colors cannot be empty")
	}
	return nil
}
