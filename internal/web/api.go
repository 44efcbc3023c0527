package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/scroll"
)

func (s *Server) handleProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"personal":         s.registry.Personal(),
		"socials":          s.registry.SocialLinks(),
		"contact_methods":  s.registry.ContactMethods(),
		"years_experience": s.registry.TotalYearsExperience(),
	})
}

func (s *Server) handleExperience(c *gin.Context) {
	resp := gin.H{
		"experiences":      s.registry.Experiences(),
		"technologies":     s.registry.AllTechnologies(),
		"years_experience": s.registry.TotalYearsExperience(),
	}
	if role, ok := s.registry.CurrentRole(); ok {
		resp["current"] = role
	}
	c.JSON(http.StatusOK, resp)
}

// handleProjects lists projects. featured=N keeps the first N before the
// status and tech filters apply.
func (s *Server) handleProjects(c *gin.Context) {
	projects, err := filterProjects(s.registry, c.Query("status"), c.Query("tech"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if raw, ok := c.GetQuery("featured"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be an integer"})
			return
		}
		projects = intersectProjects(s.registry.FeaturedProjects(n), projects)
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// handleSkills returns every skill, or one category's skills. Unknown
// categories yield an empty list.
func (s *Server) handleSkills(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("category"))
	if raw == "" {
		c.JSON(http.StatusOK, gin.H{
			"skills": s.registry.Skills(),
			"groups": s.registry.SkillGroups(),
		})
		return
	}

	category, ok := content.ParseCategory(raw)
	if !ok {
		category = content.Category(raw)
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"skills":   s.registry.SkillsByCategory(category),
	})
}

type activeSectionRequest struct {
	ScrollY  float64          `json:"scroll_y"`
	Offset   *float64         `json:"offset"`
	Sections []scroll.Section `json:"sections" binding:"required"`
}

// handleActiveSection computes which navigation section is in view for a
// reported layout. Sections missing from the layout are skipped.
func (s *Server) handleActiveSection(c *gin.Context) {
	var req activeSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offset := float64(scroll.DefaultOffset)
	if req.Offset != nil {
		offset = *req.Offset
	}

	s.metrics.IncActiveSectionLookups()
	active, _ := scroll.ActiveSection(
		scroll.SectionIDs(scroll.DefaultNav),
		scroll.NewLayoutMap(req.Sections),
		req.ScrollY,
		offset,
	)
	c.JSON(http.StatusOK, gin.H{"active": active})
}
