package contact

import (
	"net/http"

	contactform "github.com/rkprasad/portfolio/internal/services/web/contact"
	module "github.com/rkprasad/portfolio/internal/services/web/module"
	"github.com/rkprasad/portfolio/internal/services/web/platform/publichandler"
	"github.com/rkprasad/portfolio/internal/services/web/platform/requestmeta"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
)

// Module provides the contact page and form submission.
type Module struct {
	base        publichandler.Base
	submitter   *contactform.Submitter
	limiter     *contactform.Limiter
	requestMeta requestmeta.SchemePolicy
}

// New returns a contact module. A nil submitter selects the default simulated
// submission without an inbox; a nil limiter disables rate limiting.
func New(base publichandler.Base, submitter *contactform.Submitter, limiter *contactform.Limiter, policy requestmeta.SchemePolicy) Module {
	return Module{base: base, submitter: submitter, limiter: limiter, requestMeta: policy}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires contact routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.submitter, m.limiter)
	registerRoutes(mux, newHandlers(m.base, svc, m.requestMeta))
	return module.Mount{Prefix: routepath.Contact + "/", Handler: mux}, nil
}
