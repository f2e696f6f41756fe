package projects

import (
	"net/http"

	module "github.com/rkprasad/portfolio/internal/services/web/module"
	"github.com/rkprasad/portfolio/internal/services/web/platform/publichandler"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
)

// Module provides the projects page and its carousel and filter fragments.
type Module struct {
	base publichandler.Base
}

// New returns the projects module.
func New(base publichandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "projects" }

// Mount wires projects routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base, newService()))
	return module.Mount{Prefix: routepath.ProjectsPrefix, Handler: mux}, nil
}
