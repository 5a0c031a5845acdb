package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Venue.BaseURL)
	assert.Equal(t, DefaultVenueSlug, cfg.Venue.Slug)
	assert.Equal(t, DefaultVenueName, cfg.Venue.Name)
	assert.Equal(t, 7, cfg.Check.WindowDays)
	assert.Empty(t, cfg.Check.PreferredTimes)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("TEST_VENUE_SLUG", "victoria-park")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
venue:
  base_url: https://tennistowerhamlets.com
  slug: ${TEST_VENUE_SLUG}
  name: Victoria Park
  courts: [court_1, court_2, court_3]
check:
  window_days: 5
  pause_seconds: 2
  preferred_times: ["18:00", "19:00"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "victoria-park", cfg.Venue.Slug, "env placeholders expand")
	assert.Equal(t, "Victoria Park", cfg.Venue.Name)
	assert.Equal(t, []string{"court_1", "court_2", "court_3"}, cfg.Venue.Courts)
	assert.Equal(t, 5, cfg.Check.WindowDays)
	assert.Equal(t, []string{"18:00", "19:00"}, cfg.Check.PreferredTimes)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSMTPFromEnv(t *testing.T) {
	t.Setenv("SMTP_SERVER", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_USER", "bot@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("NOTIFICATION_EMAIL", "player@example.com")

	cfg := SMTPFromEnv()
	assert.Equal(t, "mail.example.com", cfg.Server)
	assert.Equal(t, 2525, cfg.Port)
	assert.True(t, cfg.Complete())
}

func TestSMTPFromEnvDefaults(t *testing.T) {
	t.Setenv("SMTP_SERVER", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASSWORD", "")
	t.Setenv("NOTIFICATION_EMAIL", "")

	cfg := SMTPFromEnv()
	assert.Equal(t, DefaultSMTPServer, cfg.Server)
	assert.Equal(t, DefaultSMTPPort, cfg.Port)
	assert.False(t, cfg.Complete())
}

func TestSMTPComplete(t *testing.T) {
	cfg := SMTPConfig{User: "u", Password: "p", Recipient: "r"}
	assert.True(t, cfg.Complete())

	for _, clear := range []func(*SMTPConfig){
		func(c *SMTPConfig) { c.User = "" },
		func(c *SMTPConfig) { c.Password = "" },
		func(c *SMTPConfig) { c.Recipient = "" },
	} {
		c := cfg
		clear(&c)
		assert.False(t, c.Complete())
	}
}
