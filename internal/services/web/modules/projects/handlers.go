package projects

import (
	"net/http"

	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
	"github.com/rkprasad/portfolio/internal/services/web/platform/publichandler"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	webtemplates "github.com/rkprasad/portfolio/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(base publichandler.Base, s service) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	sel := parseSelection(r.URL.Query(), routepath.FeaturedQueryKey)
	view := h.service.pageView(loc, h.Paths(), h.Site(), sel)
	h.WritePage(w, r, loc, lang, webtemplates.T(loc, "nav.projects"), http.StatusOK, webtemplates.Projects(view))
}

// handleFeatured serves the carousel fragment. Requests without htmx are
// sent to the equivalent full page.
func (h handlers) handleFeatured(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	sel := parseSelection(r.URL.Query(), routepath.IndexQueryKey)
	view := h.service.carouselView(loc, h.Paths(), h.Site(), sel)
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, pageURL(h.Paths(), view.Index, sel.Category))
		return
	}
	h.WriteFragment(w, r, http.StatusOK, webtemplates.FeaturedCarousel(view))
}

// handleList serves the filtered grid fragment. Requests without htmx are
// sent to the equivalent full page.
func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	sel := parseSelection(r.URL.Query(), routepath.FeaturedQueryKey)
	view := h.service.gridView(loc, h.Paths(), h.Site(), sel)
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, pageURL(h.Paths(), sel.Featured, view.Category))
		return
	}
	h.WriteFragment(w, r, http.StatusOK, webtemplates.ProjectGrid(view))
}

// handleRest applies the site catch-all below the projects prefix.
func (h handlers) handleRest(w http.ResponseWriter, r *http.Request) {
	target := h.Paths().Route(routepath.RouteHome)
	if route, ok := routepath.Lookup(r.URL.Path); ok {
		target = h.Paths().Route(route)
	}
	httpx.WriteRedirect(w, r, target)
}

