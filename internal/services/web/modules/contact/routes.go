package contact

import (
	"net/http"

	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact, h.handleSubmit)
	mux.HandleFunc(routepath.Contact, httpx.MethodNotAllowed(http.MethodGet+", "+http.MethodPost))
	mux.HandleFunc(routepath.Contact+"/", h.handleRest)
}
