// Package config loads engine configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/spiralgang/intlai"
)

// Config holds the recognized configuration options.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	UserLanguage string        `envconfig:"USER_LANGUAGE" default:"auto"`
	UserRegion   string        `envconfig:"USER_REGION" default:"global"`
	QueryType    string        `envconfig:"QUERY_TYPE" default:"general_chat"`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"1h"`

	HealthCheckTimeout time.Duration `envconfig:"HEALTH_CHECK_TIMEOUT" default:"2s"`

	// RedisURL selects the Redis-backed translation cache; empty keeps
	// the in-memory cache.
	RedisURL string `envconfig:"REDIS_URL" default:""`

	ZhipuAPIKey string `envconfig:"ZHIPU_API_KEY" default:""`

	TranslateAPIKey  string `envconfig:"TRANSLATE_API_KEY" default:""`
	TranslateBaseURL string `envconfig:"TRANSLATE_BASE_URL" default:""`
	TranslateModel   string `envconfig:"TRANSLATE_MODEL" default:"gpt-4o-mini"`
}

// Load reads and validates configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks option values against the engine's enumerations.
func (c *Config) Validate() error {
	if !intlai.LanguageCode(strings.TrimSpace(c.UserLanguage)).Valid() {
		return fmt.Errorf("USER_LANGUAGE %q is not a known language code", c.UserLanguage)
	}
	if !intlai.RegionCode(strings.ToLower(strings.TrimSpace(c.UserRegion))).Valid() {
		return fmt.Errorf("USER_REGION %q is not a known region code", c.UserRegion)
	}
	if !c.Query().Valid() {
		return fmt.Errorf("QUERY_TYPE %q is not a known query type", c.QueryType)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.HealthCheckTimeout < 100*time.Millisecond {
		return fmt.Errorf("HEALTH_CHECK_TIMEOUT must be at least 100ms")
	}
	return nil
}

// Language returns the configured user language.
func (c *Config) Language() intlai.LanguageCode {
	return intlai.LanguageFromCode(c.UserLanguage)
}

// Region returns the configured user region.
func (c *Config) Region() intlai.RegionCode {
	return intlai.RegionFromCode(c.UserRegion)
}

// Query returns the configured default query type.
func (c *Config) Query() intlai.QueryType {
	return intlai.QueryType(strings.ToLower(strings.TrimSpace(c.QueryType)))
}
