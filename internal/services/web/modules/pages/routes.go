package pages

import (
	"net/http"

	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	mux.HandleFunc(http.MethodGet+" "+routepath.SinglePage, h.handleSinglePage)
	mux.HandleFunc(routepath.About, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.SinglePage, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.Root, h.handleCatchAll)
}
