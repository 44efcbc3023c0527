package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturedProjects(t *testing.T) {
	reg := Default()
	all := reg.Projects()
	require.Len(t, all, 4)

	tests := []struct {
		name  string
		count int
		want  []Project
	}{
		{"first three", 3, all[:3]},
		{"more than available", 10, all},
		{"exact", 4, all},
		{"zero", 0, []Project{}},
		{"negative", -1, []Project{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reg.FeaturedProjects(tc.count))
		})
	}
}

func TestFeaturedProjectsReturnsCopy(t *testing.T) {
	reg := Default()
	got := reg.FeaturedProjects(DefaultFeaturedCount)
	got[0].Name = "changed"

	assert.Equal(t, "10MS Course Page", reg.Projects()[0].Name)
}

func TestYearsExperience(t *testing.T) {
	for _, year := range []int{2019, 2025, 2031} {
		now := time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC)
		reg := Default(WithClock(func() time.Time { return now }))
		assert.Equal(t, year-2019, reg.TotalYearsExperience())
	}
}

func TestTotalYearsExperienceRecomputedEachCall(t *testing.T) {
	year := 2024
	reg := Default(WithClock(func() time.Time {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}))

	assert.Equal(t, 5, reg.TotalYearsExperience())
	year = 2026
	assert.Equal(t, 7, reg.TotalYearsExperience())
}

func TestAllTechnologiesDeduplicatesAndSorts(t *testing.T) {
	reg := New(Tables{Experiences: []Experience{
		{Technologies: []string{"React", "PHP"}},
		{Technologies: []string{"React", "HTML"}},
	}})

	assert.Equal(t, []string{"HTML", "PHP", "React"}, reg.AllTechnologies())
}

func TestAllTechnologiesIsCaseSensitive(t *testing.T) {
	reg := New(Tables{Experiences: []Experience{
		{Technologies: []string{"react", "React"}},
	}})

	assert.Equal(t, []string{"React", "react"}, reg.AllTechnologies())
}

func TestProjectsByTech(t *testing.T) {
	reg := Default()

	names := func(ps []Project) []string {
		var out []string
		for _, p := range ps {
			out = append(out, p.Name)
		}
		return out
	}

	assert.Equal(t, []string{"10MS Course Page"}, names(reg.ProjectsByTech("typescript")))
	assert.Equal(t, []string{"Resume Enhancer"}, names(reg.ProjectsByTech("REDUX")))
	assert.Len(t, reg.ProjectsByTech("tailwind"), 4)
	none := reg.ProjectsByTech("cobol")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestProjectsByStatus(t *testing.T) {
	reg := Default()

	assert.Len(t, reg.ProjectsByStatus(StatusLive), 3)
	inProgress := reg.ProjectsByStatus(StatusInProgress)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "Resume Enhancer", inProgress[0].Name)
	completed := reg.ProjectsByStatus(StatusCompleted)
	assert.NotNil(t, completed)
	assert.Empty(t, completed)
}

func TestCurrentRole(t *testing.T) {
	role, ok := Default().CurrentRole()
	require.True(t, ok)
	assert.Equal(t, "2022 - Present", role.Duration)

	_, ok = New(Tables{}).CurrentRole()
	assert.False(t, ok)
}

func TestSkillsByCategory(t *testing.T) {
	reg := Default()

	assert.Equal(t, []string{"Node.js", "GraphQL", "REST APIs", "Express.js"}, reg.BackendSkills())
	assert.Contains(t, reg.FrontendSkills(), "Tailwind CSS")
	assert.Equal(t, []string{}, reg.SkillsByCategory(Category("Robotics")))
}

func TestParseHelpers(t *testing.T) {
	st, ok := ParseStatus("in progress")
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, st)

	_, ok = ParseStatus("archived")
	assert.False(t, ok)

	cat, ok := ParseCategory(" design ")
	assert.True(t, ok)
	assert.Equal(t, CategoryDesign, cat)
}

func TestContactMethods(t *testing.T) {
	methods := Default().ContactMethods()
	require.Len(t, methods, 3)

	assert.Equal(t, "mailto:saiefalemon@gmail.com", methods[0].Href)
	assert.False(t, methods[0].External)
	assert.Equal(t, "linkedin.com/in/saiefalemon", methods[1].Description)
	assert.Equal(t, "github.com/iamsaief", methods[2].Description)
}
