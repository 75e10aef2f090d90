// Package config provides configuration management for cards-admin.
//
// Purpose:
//
//	Resolve the CARDS base address and administrator credentials once at
//	process entry and hand them to commands as an immutable value. Uses Viper
//	for defaults and environment binding with the precedence
//	flags > environment variables > defaults.
//
// Dependencies:
//   - github.com/spf13/viper: Defaults and environment binding
//   - internal/config/defaults: Default configuration values
//
// Configuration Sources:
//   - Environment variables: CARDS_URL, ADMIN_PASSWORD, LOG_LEVEL (no prefix).
//     A set variable is used as is, even when empty; only unset ones fall
//     back to the defaults.
//   - Command-line flags: Take precedence over all other sources
//
// No configuration file is read.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AdminUser is the fixed basic-auth username.
const AdminUser = "admin"

// Config holds all CLI configuration. It is built once by Load and never
// mutated afterwards; commands receive it by value.
type Config struct {
	// CARDS service
	CardsURL      string
	AdminUser     string
	AdminPassword string

	// Output Settings
	OutputFormat string // plain, json, yaml, table, csv
	LogLevel     string
	Verbose      bool

	// Zero means the transport default applies.
	Timeout time.Duration
}

// Overrides carries command-line flag values. Empty fields leave the
// environment or default value in place.
type Overrides struct {
	CardsURL     string
	OutputFormat string
	LogLevel     string
	Verbose      bool
	Timeout      time.Duration
}

// Load resolves configuration from defaults, the environment and flag overrides.
func Load(overrides Overrides) (Config, error) {
	v := viper.New()

	ApplyDefaults(v)

	// A variable that is set wins over the default even when empty.
	v.AllowEmptyEnv(true)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	cfg := Config{
		CardsURL:      v.GetString(KeyCardsURL),
		AdminUser:     AdminUser,
		AdminPassword: v.GetString(KeyAdminPassword),
		OutputFormat:  v.GetString(KeyOutputFormat),
		LogLevel:      v.GetString(KeyLogLevel),
		Timeout:       v.GetDuration(KeyTimeout),
	}

	if overrides.CardsURL != "" {
		cfg.CardsURL = overrides.CardsURL
	}
	if overrides.OutputFormat != "" {
		cfg.OutputFormat = overrides.OutputFormat
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
	if overrides.Verbose {
		cfg.Verbose = true
		cfg.LogLevel = "debug"
	}
	if overrides.Timeout > 0 {
		cfg.Timeout = overrides.Timeout
	}

	cfg.CardsURL = NormalizeURL(cfg.CardsURL)
	if cfg.CardsURL == "" {
		return Config{}, fmt.Errorf("CARDS_URL resolves to an empty address")
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}

	return cfg, nil
}

// NormalizeURL trims whitespace and strips trailing slashes so that paths
// can be appended without doubling the separator.
func NormalizeURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// Redacted returns a copy of the configuration that is safe to log.
func (c Config) Redacted() Config {
	if c.AdminPassword != "" {
		c.AdminPassword = "***"
	}
	return c
}
