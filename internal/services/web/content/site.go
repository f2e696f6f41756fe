// Package content holds the portfolio's site content and the pure view logic
// built on it: project filtering, featured carousel indexing and Markdown
// rendering of long-form copy.
package content

import (
	"html/template"
	"strings"
)

// AllCategory selects every non-featured project in the grid.
const AllCategory = "All"

// Profile describes the site owner.
type Profile struct {
	Name            string `yaml:"name"`
	Role            string `yaml:"role"`
	Tagline         string `yaml:"tagline"`
	Headline        string `yaml:"headline"`
	Summary         string `yaml:"summary"`
	ExperienceYears int    `yaml:"experience_years"`
	Bio             string `yaml:"bio"`

	TaglineHTML template.HTML `yaml:"-"`
	BioHTML     template.HTML `yaml:"-"`
}

// Project is one portfolio entry.
type Project struct {
	ID           int      `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Image        string   `yaml:"image"`
	Technologies []string `yaml:"technologies"`
	Category     string   `yaml:"category"`
	LiveURL      string   `yaml:"live_url"`
	GitHubURL    string   `yaml:"github_url"`
	Featured     bool     `yaml:"featured"`

	DescriptionHTML template.HTML `yaml:"-"`
}

// Skill is a proficiency bar. Level is a percentage.
type Skill struct {
	Name      string `yaml:"name"`
	Level     int    `yaml:"level"`
	Category  string `yaml:"category"`
	ColorFrom string `yaml:"color_from"`
	ColorTo   string `yaml:"color_to"`
}

// Tool is an entry of the everyday toolbox.
type Tool struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// LearningItem is a technology currently being learned.
type LearningItem struct {
	Name     string `yaml:"name"`
	Progress int    `yaml:"progress"`
}

// Value is one of the about page's highlighted working values.
type Value struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Achievement is a headline number on the about page.
type Achievement struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// ContactChannel is a direct way to reach the owner.
type ContactChannel struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
}

// SocialLink points at an external profile.
type SocialLink struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon"`
}

// Section is an anchor of the single-page layout.
type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// Site is the full content document. Treat a loaded Site as read-only; the
// live copy is swapped as a whole on reload.
type Site struct {
	Profile      Profile          `yaml:"profile"`
	Achievements []Achievement    `yaml:"achievements"`
	Values       []Value          `yaml:"values"`
	Skills       []Skill          `yaml:"skills"`
	Tools        []Tool           `yaml:"tools"`
	Learning     []LearningItem   `yaml:"learning"`
	Projects     []Project        `yaml:"projects"`
	CategoryList []string         `yaml:"categories"`
	Contact      []ContactChannel `yaml:"contact"`
	Social       []SocialLink     `yaml:"social"`
	Sections     []Section        `yaml:"sections"`
}

// Featured returns the featured projects in document order.
func (s *Site) Featured() []Project {
	if s == nil {
		return nil
	}
	featured := make([]Project, 0, len(s.Projects))
	for _, project := range s.Projects {
		if project.Featured {
			featured = append(featured, project)
		}
	}
	return featured
}

// Categories returns the filter categories with AllCategory first. When the
// document lists none they are derived from the projects.
func (s *Site) Categories() []string {
	categories := []string{AllCategory}
	if s == nil {
		return categories
	}
	source := s.CategoryList
	if len(source) == 0 {
		for _, project := range s.Projects {
			source = append(source, project.Category)
		}
	}
	seen := map[string]bool{strings.ToLower(AllCategory): true}
	for _, category := range source {
		category = strings.TrimSpace(category)
		key := strings.ToLower(category)
		if category == "" || seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, category)
	}
	return categories
}

// NormalizeCategory maps raw input onto a known category, ignoring case.
// Empty or unknown input resolves to AllCategory.
func (s *Site) NormalizeCategory(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, category := range s.Categories() {
		if strings.EqualFold(category, raw) {
			return category
		}
	}
	return AllCategory
}

// FilterProjects returns the non-featured projects of category, or all of
// them for AllCategory. Unknown categories behave as AllCategory.
func (s *Site) FilterProjects(category string) []Project {
	if s == nil {
		return nil
	}
	category = s.NormalizeCategory(category)
	filtered := make([]Project, 0, len(s.Projects))
	for _, project := range s.Projects {
		if project.Featured {
			continue
		}
		if category == AllCategory || strings.EqualFold(project.Category, category) {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

// Project looks a project up by id.
func (s *Site) Project(id int) (Project, bool) {
	if s == nil {
		return Project{}, false
	}
	for _, project := range s.Projects {
		if project.ID == id {
			return project, true
		}
	}
	return Project{}, false
}
