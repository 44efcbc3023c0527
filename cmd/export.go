package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/web"
)

var (
	exportOut   string
	exportTheme string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the portfolio as static HTML",
	Long: `Renders the home page to <out>/index.html and copies the static assets
to <out>/static. Interactive features that need the server (theme
persistence and the contact form) degrade to plain links and forms.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger := stderrLogger(cfg.Mode)

		if err := export(cfg, exportOut, exportTheme, time.Now()); err != nil {
			return err
		}
		logger.Info("export complete", "out", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "public", "output directory")
	exportCmd.Flags().StringVar(&exportTheme, "theme", string(theme.Placeholder), "theme to render (dark or light)")
	rootCmd.AddCommand(exportCmd)
}

func export(cfg *config.Config, out, themeName string, now time.Time) error {
	t, ok := theme.Parse(themeName)
	if !ok {
		return fmt.Errorf("%w: %q", theme.ErrInvalidTheme, themeName)
	}
	prefs := theme.NewStore(theme.NewMemoryStorage(), theme.PreferenceFunc(func() (theme.Theme, bool) { return t, true }))
	prefs.Init()

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(out, os.ModePerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(out, "index.html"))
	if err != nil {
		return fmt.Errorf("creating index.html: %w", err)
	}
	page := web.BuildPage(content.Default(), cfg.Site, prefs, now)
	if err := renderer.RenderPage(f, page); err != nil {
		f.Close()
		return fmt.Errorf("rendering index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	if _, err := os.Stat(cfg.StaticDir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return copyDirContents(cfg.StaticDir, filepath.Join(out, "static"))
}

// copyDirContents recursively copies the files and directories under src into dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, os.ModePerm); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
			return nil
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
