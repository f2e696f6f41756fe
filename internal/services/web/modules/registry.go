package modules

import (
	contactform "github.com/rkprasad/portfolio/internal/services/web/contact"
	"github.com/rkprasad/portfolio/internal/services/web/modules/contact"
	"github.com/rkprasad/portfolio/internal/services/web/modules/pages"
	"github.com/rkprasad/portfolio/internal/services/web/modules/projects"
)

// DefaultModules returns the site's page modules.
func DefaultModules(deps Dependencies) []Module {
	base := deps.handlerBase()
	submitter := contactform.NewSubmitter(deps.SubmitDelay, deps.Inbox, deps.Logger)
	return []Module{
		pages.New(base),
		projects.New(base),
		contact.New(base, submitter, deps.Limiter, deps.RequestSchemePolicy),
	}
}
