package pages

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

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	view := h.service.homeView(loc, h.Paths(), h.Site())
	h.WritePage(w, r, loc, lang, webtemplates.T(loc, "nav.home"), http.StatusOK, webtemplates.Home(view))
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	view := h.service.aboutView(loc, h.Site())
	h.WritePage(w, r, loc, lang, webtemplates.T(loc, "nav.about"), http.StatusOK, webtemplates.About(view))
}

func (h handlers) handleSinglePage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	view := h.service.singlePageView(loc, h.Paths(), h.Site(), r.URL.Query())
	h.WritePage(w, r, loc, lang, webtemplates.T(loc, "nav.single_page"), http.StatusOK, webtemplates.SinglePage(view))
}

// handleCatchAll sends unknown paths home. Known routes reached with a
// trailing slash go to their canonical path instead.
func (h handlers) handleCatchAll(w http.ResponseWriter, r *http.Request) {
	route := routepath.Resolve(r.URL.Path)
	target := h.Paths().Route(route)
	if route != routepath.RouteHome && r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	httpx.WriteRedirect(w, r, target)
}
