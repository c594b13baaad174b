// Package config loads and validates service configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	FWS     FWSConfig     `mapstructure:"fws"`
	Network NetworkConfig `mapstructure:"network"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// FWSConfig governs how gauge-detail pages are fetched from the Harris
// County FWS site.
type FWSConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	Span           string `mapstructure:"span"`
}

// NetworkConfig fixes the monitoring network's civil calendar. Window
// boundaries are computed in this zone, never the process-local one.
type NetworkConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// LoggingConfig toggles zap development features and the optional
// rotating file sink.
type LoggingConfig struct {
	Development bool   `mapstructure:"development"`
	File        string `mapstructure:"file"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAgeDays  int    `mapstructure:"max_age_days"`
}

// Load builds a Config from disk/environment. A .env file in the working
// directory is folded into the environment first, if present.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FWS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.timeout_seconds", 60)
	v.SetDefault("fws.base_url", "https://www.harriscountyfws.org")
	v.SetDefault("fws.user_agent", "harris-county-fws-scraper/1.0")
	v.SetDefault("fws.timeout_seconds", 15)
	v.SetDefault("fws.span", "1 Month")
	v.SetDefault("network.timezone", "America/Chicago")
	v.SetDefault("logging.development", true)
	v.SetDefault("logging.max_size_mb", 50)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 14)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.Server.TimeoutSeconds <= 0 {
		return fmt.Errorf("server.timeout_seconds must be > 0")
	}
	if c.FWS.BaseURL == "" {
		return fmt.Errorf("fws.base_url must be set")
	}
	if c.FWS.UserAgent == "" {
		return fmt.Errorf("fws.user_agent must be set")
	}
	if c.FWS.TimeoutSeconds <= 0 {
		return fmt.Errorf("fws.timeout_seconds must be > 0")
	}
	if _, err := time.LoadLocation(c.Network.Timezone); err != nil {
		return fmt.Errorf("network.timezone %q: %w", c.Network.Timezone, err)
	}
	return nil
}

// Location resolves the configured network timezone. Validate has already
// checked the name, so a resolution failure falls back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Network.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FetchTimeout converts the FWS timeout into a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FWS.TimeoutSeconds) * time.Second
}

// RequestTimeout converts the server timeout into a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}
