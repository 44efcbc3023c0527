// Package web serves the portfolio over HTTP: the server-rendered page, its htmx
// fragments, a small JSON API and the admin area.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/store"
)

const shutdownTimeout = 10 * time.Second

// Deps are the collaborators a Server needs. Logger and Now are optional.
type Deps struct {
	Config   *config.Config
	Registry *content.Registry
	Contact  *contact.Service
	DB       *store.DB
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Now      func() time.Time
}

type Server struct {
	cfg      *config.Config
	registry *content.Registry
	contact  *contact.Service
	db       *store.DB
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
	renderer *Renderer
	engine   *gin.Engine

	adminToken  string
	hashingSalt string
}

func New(d Deps) (*Server, error) {
	if d.Config == nil || d.Registry == nil || d.Contact == nil || d.DB == nil || d.Metrics == nil {
		return nil, errors.New("web: missing dependency")
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      d.Config,
		registry: d.Registry,
		contact:  d.Contact,
		db:       d.DB,
		metrics:  d.Metrics,
		logger:   d.Logger,
		now:      d.Now,
		renderer: renderer,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}

	if s.adminToken, err = generateToken(); err != nil {
		return nil, err
	}
	if s.hashingSalt, err = generateToken(); err != nil {
		return nil, err
	}
	if gin.Mode() == gin.DebugMode {
		s.logger.Debug("admin token (dev only)", "token", s.adminToken)
	}

	s.engine = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), s.trackVisits())
	r.SetHTMLTemplate(s.renderer.Template())
	r.Static("/static", s.cfg.StaticDir)

	r.GET("/", s.handleHome)
	r.GET("/sections/experience", s.handleExperienceSection)
	r.GET("/sections/projects", s.handleProjectsSection)

	r.GET("/theme", s.handleGetTheme)
	r.POST("/theme", s.handleSetTheme)

	api := r.Group("/api")
	api.GET("/profile", s.handleProfile)
	api.GET("/experience", s.handleExperience)
	api.GET("/projects", s.handleProjects)
	api.GET("/skills", s.handleSkills)
	api.POST("/active-section", s.handleActiveSection)

	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)

	s.registerAdminRoutes(r)

	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	return r
}

// Handler returns the routed engine, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on the configured address until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
