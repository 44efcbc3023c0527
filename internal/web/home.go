package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
)

func (s *Server) handleHome(c *gin.Context) {
	advertiseClientHints(c)
	page := BuildPage(s.registry, s.cfg.Site, s.themeStore(c), s.now())
	s.metrics.IncPageViews()
	c.HTML(http.StatusOK, "index.html", page)
}

func (s *Server) handleExperienceSection(c *gin.Context) {
	c.HTML(http.StatusOK, "experience-list", BuildPage(s.registry, s.cfg.Site, nil, s.now()))
}

// handleProjectsSection re-renders the project grid for the status and tech filters.
func (s *Server) handleProjectsSection(c *gin.Context) {
	projects, err := filterProjects(s.registry, c.Query("status"), c.Query("tech"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	page := BuildPage(s.registry, s.cfg.Site, nil, s.now())
	page.Projects = projects
	page.Reveal = newRevealGroups(page)
	c.HTML(http.StatusOK, "projects-list", page)
}

var errUnknownStatus = errors.New("unknown project status")

// filterProjects narrows the registry's projects by status and technology.
// Empty filters match everything.
func filterProjects(reg *content.Registry, status, tech string) ([]content.Project, error) {
	projects := reg.Projects()
	if status = strings.TrimSpace(status); status != "" {
		st, ok := content.ParseStatus(status)
		if !ok {
			return nil, fmt.Errorf("%w %q", errUnknownStatus, status)
		}
		projects = reg.ProjectsByStatus(st)
	}
	if tech = strings.TrimSpace(tech); tech != "" {
		byTech := reg.ProjectsByTech(tech)
		projects = intersectProjects(projects, byTech)
	}
	return projects, nil
}

func intersectProjects(a, b []content.Project) []content.Project {
	keep := make(map[string]bool, len(b))
	for _, p := range b {
		keep[p.Name] = true
	}
	out := make([]content.Project, 0, len(a))
	for _, p := range a {
		if keep[p.Name] {
			out = append(out, p)
		}
	}
	return out
}
