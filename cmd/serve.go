package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long: `Starts the HTTP server together with the background worker that retries
undelivered contact messages. Stops cleanly on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		gin.SetMode(cfg.Mode)
		logger := stderrLogger(cfg.Mode)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if n, err := db.CleanupVisits(ctx, web.RetentionCutoff(time.Now())); err != nil {
		logger.Warn("privacy cleanup", "error", err)
	} else if n > 0 {
		logger.Info("privacy cleanup", "removed", n, "retention_months", web.RetentionMonths)
	}

	svc := contact.NewService(db, newSender(cfg, logger),
		contact.WithLogger(logger),
		contact.WithMaxAttempts(cfg.Contact.MaxAttempts),
	)

	srv, err := web.New(web.Deps{
		Config:   cfg,
		Registry: content.Default(),
		Contact:  svc,
		DB:       db,
		Metrics:  metrics.New(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error { return contact.NewWorker(svc, cfg.Contact.RetryInterval).Run(ctx) })
	return g.Wait()
}

func newSender(cfg *config.Config, logger *slog.Logger) contact.Sender {
	if !cfg.SMTP.Enabled() {
		logger.Warn("SMTP credentials not configured; contact messages are only logged")
		return contact.LogSender{Logger: logger}
	}
	return contact.SMTPSender{
		Host: cfg.SMTP.Host,
		Port: cfg.SMTP.Port,
		User: cfg.SMTP.User,
		Pass: cfg.SMTP.Pass,
		To:   cfg.SMTP.To,
	}
}
