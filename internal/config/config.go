// Package config loads venue settings from an optional YAML file and SMTP
// settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults for the venue this tool was built around.
const (
	DefaultBaseURL   = "https://tennistowerhamlets.com"
	DefaultVenueSlug = "st-johns-park"
	DefaultVenueName = "St Johns Park"

	DefaultSMTPServer = "smtp.gmail.com"
	DefaultSMTPPort   = 587
)

// Config holds the venue and check settings.
type Config struct {
	Venue struct {
		BaseURL string   `yaml:"base_url"`
		Slug    string   `yaml:"slug"`
		Name    string   `yaml:"name"`
		Courts  []string `yaml:"courts"`
	} `yaml:"venue"`

	Check struct {
		WindowDays     int      `yaml:"window_days"`
		PauseSeconds   int      `yaml:"pause_seconds"`
		PreferredTimes []string `yaml:"preferred_times"`
	} `yaml:"check"`
}

// Load reads a YAML config from path. An empty path yields the defaults.
// ${ENV_VAR} placeholders in the file are expanded before parsing.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}

		// Support ${ENV_VAR} placeholders in YAML config.
		data = []byte(os.ExpandEnv(string(data)))

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Venue.BaseURL == "" {
		c.Venue.BaseURL = DefaultBaseURL
	}
	if c.Venue.Slug == "" {
		c.Venue.Slug = DefaultVenueSlug
	}
	if c.Venue.Name == "" {
		c.Venue.Name = DefaultVenueName
	}
	if c.Check.WindowDays <= 0 {
		c.Check.WindowDays = 7
	}
	if c.Check.PauseSeconds < 0 {
		c.Check.PauseSeconds = 0
	}
}

// SMTPConfig holds email transport settings.
type SMTPConfig struct {
	Server    string
	Port      int
	User      string
	Password  string
	Recipient string
}

// Complete reports whether enough settings are present to send email.
func (s SMTPConfig) Complete() bool {
	return s.User != "" && s.Password != "" && s.Recipient != ""
}

// SMTPFromEnv reads email transport settings from SMTP_SERVER, SMTP_PORT,
// EMAIL_USER, EMAIL_PASSWORD, and NOTIFICATION_EMAIL. Missing server/port
// fall back to defaults; missing credentials leave the config incomplete,
// which downgrades notification to a no-op rather than an error.
func SMTPFromEnv() SMTPConfig {
	cfg := SMTPConfig{
		Server:    envOr("SMTP_SERVER", DefaultSMTPServer),
		Port:      DefaultSMTPPort,
		User:      os.Getenv("EMAIL_USER"),
		Password:  os.Getenv("EMAIL_PASSWORD"),
		Recipient: os.Getenv("NOTIFICATION_EMAIL"),
	}
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
