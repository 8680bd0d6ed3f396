package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Len(t, c.Projects, 9)
	assert.Len(t, c.Slides, 11)
	assert.Len(t, c.Pillars, 5)
	assert.Len(t, c.Presentations, 1)
}

func TestProjectStatusesAreKnown(t *testing.T) {
	for _, p := range Default().Projects {
		assert.Truef(t, p.Status == StatusCurrent || p.Status == StatusCompleted,
			"project %s has status %q", p.ID, p.Status)
	}
}

func TestStatusValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusCurrent, true},
		{StatusCompleted, true},
		{"", false},
		{"archived", false},
		{"Current", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Valid())
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	c := &Catalog{
		Projects: []Project{
			{ID: "a", Status: StatusCurrent},
			{ID: "a", Status: "paused"},
		},
		Slides: []Slide{
			{ID: "s1", Layout: LayoutHero},
			{ID: "s2", Layout: "carousel"},
		},
		Pillars: []Pillar{
			{Title: "P", Evidence: []Evidence{{Title: "E", ProjectID: "missing"}}},
		},
	}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate id "a"`)
	assert.Contains(t, err.Error(), `invalid status "paused"`)
	assert.Contains(t, err.Error(), `unknown layout "carousel"`)
	assert.Contains(t, err.Error(), `unknown project "missing"`)
}

func TestValidateEmptyCatalog(t *testing.T) {
	err := (&Catalog{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no projects")
	assert.Contains(t, err.Error(), "no slides")
}

func TestLookups(t *testing.T) {
	c := Default()

	i, ok := c.ProjectIndex("daq")
	require.True(t, ok)
	assert.Equal(t, 3, i)

	p, ok := c.Project("vortex-v2")
	require.True(t, ok)
	assert.Equal(t, "/vortex-project-builder/", p.AppURL)
	assert.True(t, p.HasLinks())

	_, ok = c.Project("nope")
	assert.False(t, ok)

	i, ok = c.SlideIndex("demo")
	require.True(t, ok)
	assert.Equal(t, 10, i)

	s, ok := c.Slide("3")
	require.True(t, ok)
	assert.Equal(t, LayoutProcessLoop, s.Layout)
	require.NotNil(t, s.Content.Process)
	assert.Len(t, s.Content.Process.Steps, 6)

	_, ok = c.Slide("nope")
	assert.False(t, ok)
}

func TestProjectsByStatus(t *testing.T) {
	c := Default()
	current := c.ProjectsByStatus(StatusCurrent)
	completed := c.ProjectsByStatus(StatusCompleted)

	assert.Len(t, current, 3)
	assert.Len(t, completed, 6)
	assert.Equal(t, "vortex-v2", current[0].ID)
}

func TestRoleGroupsKeepGlobalIndex(t *testing.T) {
	groups := Default().RoleGroups()
	require.Len(t, groups, 2)

	assert.Equal(t, "Engineer 1 (Jan 2024 – Present)", groups[0].Label)
	assert.Equal(t, "Intern (May 2023 – Dec 2023)", groups[1].Label)
	assert.Len(t, groups[0].Projects, 6)
	require.Len(t, groups[1].Projects, 3)

	first := groups[1].Projects[0]
	assert.Equal(t, 6, first.Index)
	assert.Equal(t, "bom-prototype", first.Project.ID)
}

func TestSlidePresentation(t *testing.T) {
	c := Default()

	hero := c.Slides[0]
	assert.False(t, hero.ShowTakeaway())
	assert.False(t, ShowHeader(0))

	pain := c.Slides[1]
	assert.True(t, pain.ShowTakeaway())
	assert.True(t, ShowHeader(1))

	assert.False(t, Slide{}.ShowTakeaway())
}

func TestEvidenceLink(t *testing.T) {
	assert.Equal(t, "/projects?at=daq#daq", Evidence{ProjectID: "daq"}.Link())
	assert.Equal(t, "", Evidence{Title: "Git & GitHub Adoption"}.Link())
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Projects[0].Title = "changed"
	assert.Equal(t, "Vortex Project Builder", Default().Projects[0].Title)
}
