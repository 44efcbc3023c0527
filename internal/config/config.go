// Package config loads server settings from defaults, an optional YAML file and
// PORTFOLIO_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "PORTFOLIO_"

type Config struct {
	Addr      string        `koanf:"addr"`
	Mode      string        `koanf:"mode"`
	Database  string        `koanf:"database"`
	StaticDir string        `koanf:"static"`
	Site      SiteConfig    `koanf:"site"`
	SMTP      SMTPConfig    `koanf:"smtp"`
	Admin     AdminConfig   `koanf:"admin"`
	Contact   ContactConfig `koanf:"contact"`
}

// SiteConfig is the static page metadata.
type SiteConfig struct {
	Title       string `koanf:"title"`
	Description string `koanf:"description"`
	BaseURL     string `koanf:"base_url"`
}

type SMTPConfig struct {
	Host string `koanf:"host"`
	Port string `koanf:"port"`
	User string `koanf:"user"`
	Pass string `koanf:"pass"`
	To   string `koanf:"to"`
}

// Enabled reports whether credentials are present to send mail.
func (s SMTPConfig) Enabled() bool {
	return s.User != "" && s.Pass != ""
}

type AdminConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

type ContactConfig struct {
	MaxAttempts   int           `koanf:"max_attempts"`
	RetryInterval time.Duration `koanf:"retry_interval"`
}

// Default returns the development configuration.
func Default() *Config {
	return &Config{
		Addr:      ":8080",
		Mode:      "debug",
		Database:  "data/portfolio.db",
		StaticDir: "static",
		Site: SiteConfig{
			Title:       "Saief Al Emon - Frontend Engineer",
			Description: "Frontend Engineer specializing in React, Next.js, and TypeScript. Building accessible, pixel-perfect digital experiences.",
			BaseURL:     "http://localhost:8080",
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
			To:   "saiefalemon@gmail.com",
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
		Contact: ContactConfig{
			MaxAttempts:   5,
			RetryInterval: time.Minute,
		},
	}
}

// Load reads the YAML file at path when it exists, then overlays environment
// variables: PORTFOLIO_SMTP_HOST -> smtp.host, PORTFOLIO_ADDR -> addr.
// A bare PORT sets addr when PORTFOLIO_ADDR is not given.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" && os.Getenv(EnvPrefix+"ADDR") == "" {
		cfg.Addr = ":" + port
	}

	return cfg, nil
}

// envKey maps PORTFOLIO_SECTION_SOME_KEY to section.some_key. Only the first
// underscore separates the section.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

var validModes = map[string]bool{"debug": true, "release": true, "test": true}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.Database == "" {
		return fmt.Errorf("database path is required")
	}
	if c.Contact.MaxAttempts < 1 {
		return fmt.Errorf("contact.max_attempts must be at least 1")
	}
	if c.Contact.RetryInterval <= 0 {
		return fmt.Errorf("contact.retry_interval must be positive")
	}
	if c.Mode == "release" && c.Admin.Password == Default().Admin.Password {
		return fmt.Errorf("admin.password must be changed in release mode")
	}
	return nil
}
