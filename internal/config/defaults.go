package config

import (
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyCardsURL      = "cards.url"
	KeyAdminPassword = "cards.admin-password"
	KeyOutputFormat  = "defaults.output-format"
	KeyLogLevel      = "log.level"
	KeyTimeout       = "http.timeout"
)

// Default values.
const (
	DefaultCardsURL      = "http://localhost:8080"
	DefaultAdminPassword = "admin"
)

// envBindings maps configuration keys to the environment variables that
// override them. Names are fixed; there is no prefix.
var envBindings = map[string]string{
	KeyCardsURL:      "CARDS_URL",
	KeyAdminPassword: "ADMIN_PASSWORD",
	KeyLogLevel:      "LOG_LEVEL",
}

// ApplyDefaults sets default configuration values in the provided Viper instance.
func ApplyDefaults(v *viper.Viper) {
	// CARDS service (local development instance)
	v.SetDefault(KeyCardsURL, DefaultCardsURL)
	v.SetDefault(KeyAdminPassword, DefaultAdminPassword)

	// Output Settings
	v.SetDefault(KeyOutputFormat, "plain") // plain, json, yaml, table, csv

	// Diagnostics go to stderr; keep them quiet unless asked.
	v.SetDefault(KeyLogLevel, "warn")

	// 0 = rely on the transport defaults
	v.SetDefault(KeyTimeout, 0)
}
