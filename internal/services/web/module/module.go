// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/rkprasad/portfolio/internal/services/web/content"
)

// ResolveSite returns the live site content. Development swaps it on file
// changes, so handlers resolve it per request.
type ResolveSite func() *content.Site

// StaticSite resolves a fixed site.
func StaticSite(site *content.Site) ResolveSite {
	return func() *content.Site { return site }
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
