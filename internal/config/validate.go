package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit: requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (l LogConfig) validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of debug|info|warn|error (got %q)", l.Level)
	}
	if l.Format != "json" && l.Format != "text" {
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (s StudyConfig) validate() error {
	if s.DefaultMaxCards < 1 || s.DefaultMaxCards > 50 {
		return fmt.Errorf("default_max_cards must be between 1 and 50 (got %d)", s.DefaultMaxCards)
	}
	if s.NewCardRatio <= 0 || s.NewCardRatio >= 1 {
		return fmt.Errorf("new_card_ratio must be in (0, 1) (got %v)", s.NewCardRatio)
	}
	return nil
}

func (g GenerationConfig) validate() error {
	if g.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %s)", g.SessionTTL)
	}
	if g.QuotaPerHour <= 0 {
		return fmt.Errorf("quota_per_hour must be > 0 (got %d)", g.QuotaPerHour)
	}
	if g.Temperature < 0 || g.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2 (got %v)", g.Temperature)
	}
	if g.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", g.MaxRetries)
	}
	return nil
}
