package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the embedded content document.
const DefaultPath = "data/site.yaml"

//go:embed data/site.yaml
var embeddedFS embed.FS

// Embedded loads the content compiled into the binary.
func Embedded() (*Site, error) {
	return Load(embeddedFS, DefaultPath)
}

// LoadFile loads a content document from the local filesystem.
func LoadFile(path string) (*Site, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("content path is required")
	}
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Load reads, validates and renders a content document from fsys.
func Load(fsys fs.FS, path string) (*Site, error) {
	if fsys == nil {
		return nil, errors.New("content filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes a YAML document. Unknown keys are rejected so typos surface
// at startup instead of as silently missing copy.
func Parse(data []byte) (*Site, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var site Site
	if err := decoder.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("content document is empty")
		}
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	if err := site.render(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate reports every structural problem in the document.
func (s *Site) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Profile.Name) == "" {
		errs = append(errs, errors.New("profile name is required"))
	}
	seen := make(map[int]bool, len(s.Projects))
	for i, project := range s.Projects {
		if project.ID <= 0 {
			errs = append(errs, fmt.Errorf("project %d: id must be positive", i))
		} else if seen[project.ID] {
			errs = append(errs, fmt.Errorf("project %d: duplicate id %d", i, project.ID))
		}
		seen[project.ID] = true
		if strings.TrimSpace(project.Title) == "" {
			errs = append(errs, fmt.Errorf("project %d: title is required", project.ID))
		}
		if strings.TrimSpace(project.Category) == "" {
			errs = append(errs, fmt.Errorf("project %d: category is required", project.ID))
		}
	}
	if len(s.CategoryList) > 0 {
		known := make(map[string]bool, len(s.CategoryList))
		for _, category := range s.CategoryList {
			known[strings.ToLower(strings.TrimSpace(category))] = true
		}
		for _, project := range s.Projects {
			if project.Category != "" && !known[strings.ToLower(project.Category)] {
				errs = append(errs, fmt.Errorf("project %d: category %q is not listed", project.ID, project.Category))
			}
		}
	}
	for _, skill := range s.Skills {
		if strings.TrimSpace(skill.Name) == "" {
			errs = append(errs, errors.New("skill name is required"))
		}
		if skill.Level < 0 || skill.Level > 100 {
			errs = append(errs, fmt.Errorf("skill %q: level %d outside 0-100", skill.Name, skill.Level))
		}
	}
	for _, item := range s.Learning {
		if item.Progress < 0 || item.Progress > 100 {
			errs = append(errs, fmt.Errorf("learning %q: progress %d outside 0-100", item.Name, item.Progress))
		}
	}
	sections := make(map[string]bool, len(s.Sections))
	for _, section := range s.Sections {
		if section.ID == "" || sections[section.ID] {
			errs = append(errs, fmt.Errorf("section %q: id must be unique and non-empty", section.ID))
		}
		sections[section.ID] = true
	}
	return errors.Join(errs...)
}

func (s *Site) render() error {
	var err error
	if s.Profile.TaglineHTML, err = RenderInlineMarkdown(s.Profile.Tagline); err != nil {
		return fmt.Errorf("profile tagline: %w", err)
	}
	if s.Profile.BioHTML, err = RenderMarkdown(s.Profile.Bio); err != nil {
		return fmt.Errorf("profile bio: %w", err)
	}
	for i := range s.Projects {
		if s.Projects[i].DescriptionHTML, err = RenderInlineMarkdown(s.Projects[i].Description); err != nil {
			return fmt.Errorf("project %d description: %w", s.Projects[i].ID, err)
		}
	}
	return nil
}
