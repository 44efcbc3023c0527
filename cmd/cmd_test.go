package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/theme"
)

func TestExport(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(static, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "site.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "images", "me.png"), []byte("png"), 0o644))

	cfg := config.Default()
	cfg.StaticDir = static
	out := filepath.Join(t.TempDir(), "public")

	require.NoError(t, export(cfg, out, "light", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	html, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `class="light"`)
	assert.Contains(t, string(html), `data-theme-resolved="true"`)
	assert.Contains(t, string(html), "&copy; 2025")

	css, err := os.ReadFile(filepath.Join(out, "static", "site.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(css))
	assert.FileExists(t, filepath.Join(out, "static", "images", "me.png"))
}

func TestExportMissingStaticDir(t *testing.T) {
	cfg := config.Default()
	cfg.StaticDir = filepath.Join(t.TempDir(), "nope")
	out := t.TempDir()

	require.NoError(t, export(cfg, out, "dark", time.Now()))
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.NoDirExists(t, filepath.Join(out, "static"))
}

func TestExportRejectsUnknownTheme(t *testing.T) {
	err := export(config.Default(), t.TempDir(), "sepia", time.Now())
	assert.ErrorIs(t, err, theme.ErrInvalidTheme)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Equal(t, "portfolio dev\n", buf.String())
}

func TestNewSender(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, "test")
	cfg := config.Default()
	assert.IsType(t, contact.LogSender{}, newSender(cfg, logger))

	cfg.SMTP.User, cfg.SMTP.Pass = "me@example.com", "secret"
	assert.IsType(t, contact.SMTPSender{}, newSender(cfg, logger))
}
