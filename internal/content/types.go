// Package content holds the static portfolio tables (personal info, experience, projects,
// skills) and the pure accessors the views read them through.
package content

import "strings"

// PersonalInfo is the owner's profile and contact details.
type PersonalInfo struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Tagline   string   `json:"tagline"`
	Email     string   `json:"email"`
	GitHub    string   `json:"github"`
	LinkedIn  string   `json:"linkedin"`
	CodePen   string   `json:"codepen"`
	ResumeURL string   `json:"resume_url"`
	Bio       []string `json:"bio"`
}

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// ContactMethod is a way to reach the owner as shown in the contact section.
type ContactMethod struct {
	Name        string `json:"name"`
	Href        string `json:"href"`
	Description string `json:"description"`
	External    bool   `json:"external"`
}

// Experience is one role. Collections are ordered most recent first.
type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Duration     string   `json:"duration"`
	Location     string   `json:"location"`
	Highlights   []string `json:"highlights"`
	Technologies []string `json:"technologies"`
}

type ProjectStatus string

const (
	StatusLive       ProjectStatus = "Live"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
)

// ParseStatus matches s against the known statuses ignoring case.
func ParseStatus(s string) (ProjectStatus, bool) {
	for _, st := range []ProjectStatus{StatusLive, StatusInProgress, StatusCompleted} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	return "", false
}

type Project struct {
	Name        string        `json:"name"`
	Year        string        `json:"year"`
	Status      ProjectStatus `json:"status"`
	Description string        `json:"description"`
	TechStack   []string      `json:"tech_stack"`
	GitHubURL   string        `json:"github_url"`
	LiveURL     string        `json:"live_url"`
	Image       string        `json:"image"`
}

// Category groups skills for structured display.
type Category string

const (
	CategoryFrontend Category = "Frontend"
	CategoryBackend  Category = "Backend"
	CategoryDatabase Category = "Database"
	CategoryTools    Category = "Tools"
	CategoryDesign   Category = "Design"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryFrontend, CategoryBackend, CategoryDatabase, CategoryTools, CategoryDesign}
}

// ParseCategory matches s against the known categories ignoring case.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, true
		}
	}
	return "", false
}

type SkillGroup struct {
	Category Category `json:"category"`
	Skills   []string `json:"skills"`
}
