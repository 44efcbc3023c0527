package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/theme"
)

const (
	// colorSchemeHint is the client hint carrying the OS color scheme.
	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

	themeCookieMaxAge = 365 * 24 * 3600
)

// cookieStorage persists the theme preference in a browser cookie.
type cookieStorage struct {
	c *gin.Context
}

func (s cookieStorage) Load(key string) (string, error) {
	v, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", theme.ErrNotFound
	}
	return v, err
}

func (s cookieStorage) Save(key, value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, themeCookieMaxAge, "/", "", false, false)
	return nil
}

// clientHint reads the OS color scheme the browser reports, if any.
func clientHint(c *gin.Context) theme.PreferenceSource {
	return theme.PreferenceFunc(func() (theme.Theme, bool) {
		return theme.ParseColorScheme(c.GetHeader(colorSchemeHint))
	})
}

// themeStore resolves the preference for the current request.
func (s *Server) themeStore(c *gin.Context) *theme.Store {
	store := theme.NewStore(cookieStorage{c}, clientHint(c), theme.WithLogger(s.logger))
	store.Init()
	store.Subscribe(func(t theme.Theme) { s.metrics.ObserveThemeChange(t.String()) })
	return store
}

func advertiseClientHints(c *gin.Context) {
	c.Header("Accept-CH", colorSchemeHint)
	c.Header("Critical-CH", colorSchemeHint)
	c.Header("Vary", colorSchemeHint+", Cookie")
}

func (s *Server) handleGetTheme(c *gin.Context) {
	advertiseClientHints(c)
	store := s.themeStore(c)
	c.JSON(http.StatusOK, gin.H{
		"theme":    store.Theme(),
		"resolved": store.Resolved(),
		"key":      theme.StorageKey,
	})
}

// handleSetTheme accepts theme=dark|light|toggle. An empty value toggles.
func (s *Server) handleSetTheme(c *gin.Context) {
	store := s.themeStore(c)

	switch value := c.PostForm("theme"); value {
	case "", "toggle":
		store.Toggle()
	default:
		t, ok := theme.Parse(value)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": theme.ErrInvalidTheme.Error()})
			return
		}
		if err := store.Set(t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if isHTMX(c) {
		c.HTML(http.StatusOK, "theme-toggle", ThemeView{Theme: store.Theme(), Resolved: true, Swap: true})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
