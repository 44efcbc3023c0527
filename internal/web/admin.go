package web

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/theme"
)

const (
	adminCookie = "admin_token"

	// RetentionMonths is how long visit records are kept.
	RetentionMonths = 12
)

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP derives a stable per-process identifier for ip. Raw addresses are never stored.
func (s *Server) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(sum[:])[:16]
}

// RetentionCutoff is the oldest visit time kept at now.
func RetentionCutoff(now time.Time) time.Time {
	return now.AddDate(0, -RetentionMonths, 0)
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Admin.Password)) == 1
	return userOK && passOK
}

func (s *Server) registerAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy", gin.H{
			"Site":            s.cfg.Site,
			"RetentionMonths": RetentionMonths,
			"ThemeCookie":     theme.StorageKey,
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !s.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			s.logger.Warn("failed admin login", "visitor", s.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login", gin.H{"Error": "Invalid credentials"})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
		s.logger.Info("admin login", "visitor", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context(), s.now())
		if err != nil {
			s.logger.Error("loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error", gin.H{"Error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard", gin.H{
			"Stats":           stats,
			"RetentionMonths": RetentionMonths,
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visits, err := s.db.RecentVisits(c.Request.Context(), 200)
		if err != nil {
			s.logger.Error("loading visitors", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error", gin.H{"Error": "Failed to load visitors"})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors", gin.H{"Visitors": visits})
	})

	admin.GET("/messages", func(c *gin.Context) {
		msgs, err := s.db.RecentMessages(c.Request.Context(), 200)
		if err != nil {
			s.logger.Error("loading messages", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error", gin.H{"Error": "Failed to load messages"})
			return
		}
		c.HTML(http.StatusOK, "admin-messages", gin.H{
			"Messages":    msgs,
			"MaxAttempts": s.contact.MaxAttempts(),
		})
	})

	admin.POST("/messages/:id/retry", func(c *gin.Context) {
		id, ok := messageID(c)
		if !ok {
			return
		}
		msg, err := s.contact.Retry(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case errors.Is(err, contact.ErrInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "message": msg})
		default:
			c.JSON(http.StatusOK, gin.H{"message": msg})
		}
	})

	admin.DELETE("/messages/:id", func(c *gin.Context) {
		id, ok := messageID(c)
		if !ok {
			return
		}
		err := s.db.DeleteMessage(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case err != nil:
			s.logger.Error("deleting message", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		default:
			s.logger.Info("message deleted", "id", id, "visitor", s.hashIP(c.ClientIP()))
			// htmx swaps the row with the empty body
			c.Status(http.StatusOK)
		}
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.db.CleanupVisits(c.Request.Context(), RetentionCutoff(s.now()))
		if err != nil {
			s.logger.Error("privacy cleanup", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}

func messageID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return uuid.UUID{}, false
	}
	return id, true
}
