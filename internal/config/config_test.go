package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
addr: ":9000"
mode: test
site:
  title: "Example"
  base_url: "https://example.com"
smtp:
  user: me@example.com
  pass: hunter2
contact:
  max_attempts: 3
  retry_interval: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "test", cfg.Mode)
	assert.Equal(t, "Example", cfg.Site.Title)
	assert.Equal(t, "https://example.com", cfg.Site.BaseURL)
	// untouched defaults survive
	assert.Equal(t, Default().Site.Description, cfg.Site.Description)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, 3, cfg.Contact.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Contact.RetryInterval)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "smtp:\n  host: file.example.com\n")
	t.Setenv("PORTFOLIO_SMTP_HOST", "env.example.com")
	t.Setenv("PORTFOLIO_SITE_BASE_URL", "https://env.example.com")
	t.Setenv("PORTFOLIO_MODE", "release")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env.example.com", cfg.SMTP.Host)
	assert.Equal(t, "https://env.example.com", cfg.Site.BaseURL)
	assert.Equal(t, "release", cfg.Mode)
}

func TestLoadPortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)

	t.Setenv("PORTFOLIO_ADDR", "127.0.0.1:4000")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4000", cfg.Addr)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "addr: [unterminated"))
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "addr", envKey("PORTFOLIO_ADDR"))
	assert.Equal(t, "contact.max_attempts", envKey("PORTFOLIO_CONTACT_MAX_ATTEMPTS"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"bad mode", func(c *Config) { c.Mode = "prod" }, "invalid mode"},
		{"no addr", func(c *Config) { c.Addr = "" }, "addr is required"},
		{"no database", func(c *Config) { c.Database = "" }, "database path"},
		{"zero attempts", func(c *Config) { c.Contact.MaxAttempts = 0 }, "max_attempts"},
		{"zero interval", func(c *Config) { c.Contact.RetryInterval = 0 }, "retry_interval"},
		{"default password in release", func(c *Config) { c.Mode = "release" }, "admin.password"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
