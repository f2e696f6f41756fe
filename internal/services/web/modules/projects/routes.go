package projects

import (
	"net/http"

	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Projects, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsFeatured, h.handleFeatured)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsList, h.handleList)
	mux.HandleFunc(routepath.Projects, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.ProjectsFeatured, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.ProjectsList, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.ProjectsPrefix, h.handleRest)
}
