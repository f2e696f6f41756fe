// Package modules defines web module registry helpers.
package modules

import (
	"log"
	"time"

	contactform "github.com/rkprasad/portfolio/internal/services/web/contact"
	module "github.com/rkprasad/portfolio/internal/services/web/module"
	"github.com/rkprasad/portfolio/internal/services/web/platform/publichandler"
	"github.com/rkprasad/portfolio/internal/services/web/platform/requestmeta"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	"github.com/rkprasad/portfolio/internal/services/web/storage"
	webtemplates "github.com/rkprasad/portfolio/internal/services/web/templates"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared configuration required to compose the web
// module registry.
type Dependencies struct {
	Paths  routepath.Paths
	Site   module.ResolveSite
	Assets webtemplates.Assets

	// Contact submission.
	Inbox       storage.Inbox
	SubmitDelay time.Duration
	Limiter     *contactform.Limiter
	Logger      *log.Logger

	RequestSchemePolicy requestmeta.SchemePolicy
	Now                 func() time.Time
}

func (d Dependencies) handlerBase() publichandler.Base {
	return publichandler.NewBase(
		publichandler.WithPaths(d.Paths),
		publichandler.WithSite(d.Site),
		publichandler.WithAssets(d.Assets),
		publichandler.WithClock(d.Now),
	)
}
