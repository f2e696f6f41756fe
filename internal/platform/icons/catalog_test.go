package icons

import (
	"strings"
	"testing"
)

func TestCatalogEntriesAreUniqueAndNamed(t *testing.T) {
	defs := Catalog()
	if len(defs) == 0 {
		t.Fatal("expected catalog to include icon definitions")
	}

	seen := make(map[ID]struct{})
	for _, def := range defs {
		if _, ok := seen[def.ID]; ok {
			t.Errorf("duplicate icon id in catalog: %s", def.ID)
		}
		seen[def.ID] = struct{}{}
		if strings.TrimSpace(def.Name) == "" {
			t.Errorf("icon %s missing name", def.ID)
		}
	}
}

func TestCatalogMarkdownIncludesIconIds(t *testing.T) {
	markdown := CatalogMarkdown()
	for _, def := range Catalog() {
		if !strings.Contains(markdown, "| "+string(def.ID)+" |") {
			t.Errorf("catalog markdown missing icon id %s", def.ID)
		}
	}
}

func TestParse(t *testing.T) {
	tests := map[string]ID{
		"github":  GitHub,
		" GitHub": GitHub,
		"mail":    Email,
		"zap":     Zap,
		"unknown": Generic,
		"":        Generic,
	}
	for raw, want := range tests {
		if got := Parse(raw); got != want {
			t.Errorf("Parse(%q) = %q, want %q", raw, got, want)
		}
	}
}
