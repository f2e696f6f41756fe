package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustEmbedded(t *testing.T) *Site {
	t.Helper()
	site, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error = %v", err)
	}
	return site
}

func projectIDs(projects []Project) []int {
	ids := make([]int, 0, len(projects))
	for _, project := range projects {
		ids = append(ids, project.ID)
	}
	return ids
}

func TestEmbeddedContent(t *testing.T) {
	t.Parallel()

	site := mustEmbedded(t)
	if site.Profile.Name != "RK Prasad" {
		t.Fatalf("profile name = %q, want %q", site.Profile.Name, "RK Prasad")
	}
	if len(site.Projects) != 6 {
		t.Fatalf("len(projects) = %d, want 6", len(site.Projects))
	}
	if len(site.Skills) != 8 {
		t.Fatalf("len(skills) = %d, want 8", len(site.Skills))
	}
	if site.Profile.BioHTML == "" {
		t.Fatal("expected rendered bio")
	}
}

func TestFeatured(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]int{1, 2}, projectIDs(mustEmbedded(t).Featured())); diff != "" {
		t.Fatalf("featured mismatch (-want +got):\n%s", diff)
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]string{"All", "Frontend", "Full Stack"}, mustEmbedded(t).Categories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoriesDerivedFromProjects(t *testing.T) {
	t.Parallel()

	site := &Site{Projects: []Project{
		{ID: 1, Category: "Backend"},
		{ID: 2, Category: "Frontend"},
		{ID: 3, Category: "backend"},
	}}
	if diff := cmp.Diff([]string{"All", "Backend", "Frontend"}, site.Categories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterProjects(t *testing.T) {
	t.Parallel()

	site := mustEmbedded(t)
	tests := []struct {
		category string
		want     []int
	}{
		{category: "All", want: []int{3, 4, 5, 6}},
		{category: "", want: []int{3, 4, 5, 6}},
		{category: "Frontend", want: []int{3, 4}},
		{category: "full stack", want: []int{5, 6}},
		{category: "Mobile", want: []int{3, 4, 5, 6}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, projectIDs(site.FilterProjects(tc.category))); diff != "" {
			t.Fatalf("FilterProjects(%q) mismatch (-want +got):\n%s", tc.category, diff)
		}
	}
}

func TestFilterProjectsNeverIncludesFeatured(t *testing.T) {
	t.Parallel()

	site := mustEmbedded(t)
	for _, category := range site.Categories() {
		for _, project := range site.FilterProjects(category) {
			if project.Featured {
				t.Fatalf("category %q returned featured project %d", category, project.ID)
			}
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	t.Parallel()

	site := mustEmbedded(t)
	if got := site.NormalizeCategory(" frontend "); got != "Frontend" {
		t.Fatalf("NormalizeCategory() = %q, want %q", got, "Frontend")
	}
	if got := site.NormalizeCategory("nope"); got != AllCategory {
		t.Fatalf("NormalizeCategory() = %q, want %q", got, AllCategory)
	}
}

func TestProjectLookup(t *testing.T) {
	t.Parallel()

	site := mustEmbedded(t)
	project, ok := site.Project(3)
	if !ok || project.Title != "Weather Dashboard" {
		t.Fatalf("Project(3) = %+v, %v", project, ok)
	}
	if _, ok := site.Project(99); ok {
		t.Fatal("expected missing project")
	}
}

func TestNilSiteIsSafe(t *testing.T) {
	t.Parallel()

	var site *Site
	if site.Featured() != nil || site.FilterProjects("All") != nil {
		t.Fatal("expected nil slices from nil site")
	}
	if diff := cmp.Diff([]string{AllCategory}, site.Categories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}
