package content

import (
	"slices"
	"sort"
	"strings"
	"time"
)

const (
	// CareerStartYear is the year of the first professional role counted towards experience.
	CareerStartYear = 2019

	DefaultFeaturedCount = 3
)

// Tables is the raw data a Registry serves.
type Tables struct {
	Personal    PersonalInfo
	Socials     []SocialLink
	Experiences []Experience
	Projects    []Project
	Skills      []string
	SkillGroups []SkillGroup
}

// Registry serves read-only views over the portfolio tables. Returned slices are
// copies of the top-level collections; nested slices are shared and must not be mutated.
type Registry struct {
	t   Tables
	now func() time.Time
}

type Option func(*Registry)

// WithClock replaces time.Now for year-dependent accessors.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

func New(t Tables, opts ...Option) *Registry {
	r := &Registry{t: t, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default returns the registry over the site's built-in tables.
func Default(opts ...Option) *Registry {
	return New(Tables{
		Personal:    personalInfo,
		Socials:     socialLinks,
		Experiences: experiences,
		Projects:    projects,
		Skills:      skills,
		SkillGroups: skillGroups,
	}, opts...)
}

func (r *Registry) Personal() PersonalInfo { return r.t.Personal }

func (r *Registry) SocialLinks() []SocialLink { return slices.Clone(r.t.Socials) }

// ContactMethods lists email, LinkedIn and GitHub with display-friendly descriptions.
func (r *Registry) ContactMethods() []ContactMethod {
	p := r.t.Personal
	return []ContactMethod{
		{Name: "Email", Href: "mailto:" + p.Email, Description: p.Email},
		{Name: "LinkedIn", Href: p.LinkedIn, Description: strings.TrimPrefix(p.LinkedIn, "https://"), External: true},
		{Name: "GitHub", Href: p.GitHub, Description: strings.TrimPrefix(p.GitHub, "https://"), External: true},
	}
}

func (r *Registry) Experiences() []Experience { return slices.Clone(r.t.Experiences) }

// CurrentRole returns the most recent role.
func (r *Registry) CurrentRole() (Experience, bool) {
	if len(r.t.Experiences) == 0 {
		return Experience{}, false
	}
	return r.t.Experiences[0], true
}

// TotalYearsExperience is recomputed from the clock on every call.
func (r *Registry) TotalYearsExperience() int {
	return YearsExperienceAt(r.now())
}

func YearsExperienceAt(t time.Time) int {
	return t.Year() - CareerStartYear
}

// AllTechnologies returns every technology tag across all roles, deduplicated
// (case-sensitive) and sorted.
func (r *Registry) AllTechnologies() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, exp := range r.t.Experiences {
		for _, tech := range exp.Technologies {
			if _, ok := seen[tech]; ok {
				continue
			}
			seen[tech] = struct{}{}
			out = append(out, tech)
		}
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Projects() []Project { return slices.Clone(r.t.Projects) }

func (r *Registry) ProjectsByStatus(status ProjectStatus) []Project {
	out := []Project{}
	for _, p := range r.t.Projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// ProjectsByTech keeps projects with at least one tech tag containing tech, ignoring case.
func (r *Registry) ProjectsByTech(tech string) []Project {
	needle := strings.ToLower(tech)
	out := []Project{}
	for _, p := range r.t.Projects {
		if slices.ContainsFunc(p.TechStack, func(t string) bool {
			return strings.Contains(strings.ToLower(t), needle)
		}) {
			out = append(out, p)
		}
	}
	return out
}

// FeaturedProjects returns the first count projects in declared order. A count past the
// end yields the whole collection; a non-positive count yields none.
func (r *Registry) FeaturedProjects(count int) []Project {
	if count <= 0 {
		return []Project{}
	}
	count = min(count, len(r.t.Projects))
	return slices.Clone(r.t.Projects[:count])
}

func (r *Registry) Skills() []string { return slices.Clone(r.t.Skills) }

func (r *Registry) SkillGroups() []SkillGroup { return slices.Clone(r.t.SkillGroups) }

// SkillsByCategory returns the ordered skills of category, or an empty list when unknown.
func (r *Registry) SkillsByCategory(category Category) []string {
	for _, g := range r.t.SkillGroups {
		if g.Category == category {
			return slices.Clone(g.Skills)
		}
	}
	return []string{}
}

func (r *Registry) FrontendSkills() []string { return r.SkillsByCategory(CategoryFrontend) }

func (r *Registry) BackendSkills() []string { return r.SkillsByCategory(CategoryBackend) }
