package content

import (
	"errors"
	"fmt"
)

// Validate checks the catalog invariants and reports every violation at once
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Projects) == 0 {
		errs = append(errs, errors.New("catalog has no projects"))
	}
	if len(c.Slides) == 0 {
		errs = append(errs, errors.New("catalog has no slides"))
	}

	projectIDs := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("project %d: empty id", i))
		} else if projectIDs[p.ID] {
			errs = append(errs, fmt.Errorf("project %d: duplicate id %q", i, p.ID))
		}
		projectIDs[p.ID] = true
		if !p.Status.Valid() {
			errs = append(errs, fmt.Errorf("project %q: invalid status %q", p.ID, p.Status))
		}
	}

	slideIDs := make(map[string]bool, len(c.Slides))
	for i, s := range c.Slides {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("slide %d: empty id", i))
		} else if slideIDs[s.ID] {
			errs = append(errs, fmt.Errorf("slide %d: duplicate id %q", i, s.ID))
		}
		slideIDs[s.ID] = true
		if !s.Layout.Valid() {
			errs = append(errs, fmt.Errorf("slide %q: unknown layout %q", s.ID, s.Layout))
		}
	}

	for _, pillar := range c.Pillars {
		for _, ev := range pillar.Evidence {
			if ev.ProjectID != "" && !projectIDs[ev.ProjectID] {
				errs = append(errs, fmt.Errorf("pillar %q: evidence %q links unknown project %q", pillar.Title, ev.Title, ev.ProjectID))
			}
		}
	}

	return errors.Join(errs...)
}

func (c *Catalog) ProjectIndex(id string) (int, bool) {
	for i, p := range c.Projects {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (c *Catalog) SlideIndex(id string) (int, bool) {
	for i, s := range c.Slides {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (c *Catalog) Project(id string) (Project, bool) {
	if i, ok := c.ProjectIndex(id); ok {
		return c.Projects[i], true
	}
	return Project{}, false
}

func (c *Catalog) Slide(id string) (Slide, bool) {
	if i, ok := c.SlideIndex(id); ok {
		return c.Slides[i], true
	}
	return Slide{}, false
}

// ProjectsByStatus returns the projects with the given status in timeline order
func (c *Catalog) ProjectsByStatus(status Status) []Project {
	projects := make([]Project, 0, len(c.Projects))
	for _, p := range c.Projects {
		if p.Status == status {
			projects = append(projects, p)
		}
	}
	return projects
}

// RoleGroups splits the timeline into sidebar sections. Each entry keeps its
// position in the full list so selecting it activates the right section.
func (c *Catalog) RoleGroups() []RoleGroup {
	groups := make([]RoleGroup, 0, len(roleLabels))
	for _, rl := range roleLabels {
		group := RoleGroup{Role: rl.role, Label: rl.label}
		for i, p := range c.Projects {
			if p.Role == rl.role {
				group.Projects = append(group.Projects, IndexedProject{Index: i, Project: p})
			}
		}
		if len(group.Projects) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}
