// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root             = "/"
	About            = "/about"
	Projects         = "/projects"
	ProjectsPrefix   = "/projects/"
	ProjectsFeatured = "/projects/featured"
	ProjectsList     = "/projects/list"
	Contact          = "/contact"
	SinglePage       = "/single-page"
	Health           = "/up"
	Ready            = "/readyz"
	Manifest         = "/manifest.json"
	StaticPrefix     = "/static/"
	MotionStylesheet = "/static/motion.css"
)

// Query keys shared by page handlers and templates.
const (
	FeaturedQueryKey  = "featured"
	IndexQueryKey     = "index"
	DirectionQueryKey = "dir"
	CategoryQueryKey  = "category"
)

// DefaultProductionBase is the deploy base path used by production builds.
const DefaultProductionBase = "/protfolio-rk"

// Route names one page composition.
type Route string

const (
	RouteHome       Route = "home"
	RouteAbout      Route = "about"
	RouteProjects   Route = "projects"
	RouteContact    Route = "contact"
	RouteSinglePage Route = "single-page"
)

var routePaths = map[Route]string{
	RouteHome:       Root,
	RouteAbout:      About,
	RouteProjects:   Projects,
	RouteContact:    Contact,
	RouteSinglePage: SinglePage,
}

// Path returns the base-relative path of r. Unknown routes map to Root.
func (r Route) Path() string {
	if path, ok := routePaths[r]; ok {
		return path
	}
	return Root
}

// Lookup matches a base-relative path to a page route. A single trailing
// slash is ignored.
func Lookup(path string) (Route, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = Root
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for route, routePath := range routePaths {
		if routePath == path {
			return route, true
		}
	}
	return "", false
}

// Resolve is Lookup with the catch-all applied: unknown paths resolve home.
func Resolve(path string) Route {
	if route, ok := Lookup(path); ok {
		return route
	}
	return RouteHome
}

// Paths builds absolute URLs under a deploy base path.
type Paths struct {
	base string
}

// NewPaths normalizes base ("", "/", "x", "/x/" all accepted).
func NewPaths(base string) Paths {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return Paths{}
	}
	return Paths{base: "/" + base}
}

// Base returns the normalized base path without a trailing slash.
func (p Paths) Base() string {
	return p.base
}

// URL prefixes a base-relative path with the base.
func (p Paths) URL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return p.base + path
}

// Route returns the absolute URL of a page route.
func (p Paths) Route(route Route) string {
	return p.URL(route.Path())
}

// WithQuery returns the absolute URL of path with query values encoded.
func (p Paths) WithQuery(path string, query url.Values) string {
	target := p.URL(path)
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

// Strip removes the base from an absolute request path. The bool is false
// when the path lies outside the base.
func (p Paths) Strip(requestPath string) (string, bool) {
	if p.base == "" {
		if requestPath == "" {
			return Root, true
		}
		return requestPath, strings.HasPrefix(requestPath, "/")
	}
	if requestPath == p.base {
		return Root, true
	}
	rest, ok := strings.CutPrefix(requestPath, p.base+"/")
	if !ok {
		return "", false
	}
	return "/" + rest, true
}

// NavItem is one entry of the primary navigation.
type NavItem struct {
	Route    Route
	LabelKey string
	Href     string
	Active   bool
}

var navOrder = []struct {
	route Route
	key   string
}{
	{RouteHome, "nav.home"},
	{RouteAbout, "nav.about"},
	{RouteProjects, "nav.projects"},
	{RouteContact, "nav.contact"},
	{RouteSinglePage, "nav.single_page"},
}

// NavItems returns the navigation in display order, marking the item whose
// route matches the base-relative currentPath as active.
func NavItems(paths Paths, currentPath string) []NavItem {
	current, known := Lookup(currentPath)
	if !known {
		current = ""
	}
	if strings.HasPrefix(currentPath, ProjectsPrefix) {
		current = RouteProjects
	}
	items := make([]NavItem, 0, len(navOrder))
	for _, entry := range navOrder {
		items = append(items, NavItem{
			Route:    entry.route,
			LabelKey: entry.key,
			Href:     paths.Route(entry.route),
			Active:   entry.route == current,
		})
	}
	return items
}
