package pages

import (
	"net/http"

	module "github.com/rkprasad/portfolio/internal/services/web/module"
	"github.com/rkprasad/portfolio/internal/services/web/platform/publichandler"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
)

// Module provides the home, about and single page routes plus the catch-all.
type Module struct {
	base publichandler.Base
}

// New returns the pages module.
func New(base publichandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "pages" }

// Mount wires page routes at the root.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base, newService()))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
