package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/rkprasad/portfolio/internal/platform/config"
	"github.com/rkprasad/portfolio/internal/platform/csp"
	"github.com/rkprasad/portfolio/internal/platform/manifest"
	"github.com/rkprasad/portfolio/internal/platform/readiness"
	"github.com/rkprasad/portfolio/internal/services/web/app"
	contactform "github.com/rkprasad/portfolio/internal/services/web/contact"
	"github.com/rkprasad/portfolio/internal/services/web/content"
	"github.com/rkprasad/portfolio/internal/services/web/modules"
	"github.com/rkprasad/portfolio/internal/services/web/motion"
	webi18n "github.com/rkprasad/portfolio/internal/services/web/platform/i18n"
	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
	"github.com/rkprasad/portfolio/internal/services/web/platform/observability"
	"github.com/rkprasad/portfolio/internal/services/web/platform/requestmeta"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	"github.com/rkprasad/portfolio/internal/services/web/static"
	"github.com/rkprasad/portfolio/internal/services/web/storage"
	webtemplates "github.com/rkprasad/portfolio/internal/services/web/templates"
	"golang.org/x/time/rate"
)

// rootAssets are served at the base root as well as under /static/, where
// the manifest and browsers expect them.
var rootAssets = []string{"favicon.svg", "android-chrome-192x192.png", "android-chrome-512x512.png"}

// SiteDependencies carries collaborators built outside the site.
type SiteDependencies struct {
	Inbox storage.Store
	Now   func() time.Time
}

// Site is the assembled HTTP surface and the state behind it.
type Site struct {
	Mode    config.Mode
	Paths   routepath.Paths
	Handler http.Handler
	Gate    *readiness.Gate
	Content *content.Store
	Catalog *static.Catalog
	Assets  webtemplates.Assets

	// pages serves base-relative requests without the gate or middleware.
	pages  http.Handler
	inbox  storage.Store
	logger *log.Logger
}

// BasePath resolves the deploy base for mode. An explicit base wins.
func BasePath(mode config.Mode, explicit string) string {
	if base := strings.TrimSpace(explicit); base != "" {
		return base
	}
	if mode.IsProduction() {
		return routepath.DefaultProductionBase
	}
	return ""
}

// NewSite builds the site handler for config.
func NewSite(config Config, deps SiteDependencies) (*Site, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	paths := routepath.NewPaths(BasePath(config.Mode, config.BasePath))

	var (
		site *content.Site
		err  error
	)
	if path := strings.TrimSpace(config.ContentPath); path != "" {
		site, err = content.LoadFile(path)
	} else {
		site, err = content.Embedded()
	}
	if err != nil {
		return nil, fmt.Errorf("load site content: %w", err)
	}
	store := content.NewStore(site)

	catalog, err := static.NewCatalog(static.FS)
	if err != nil {
		return nil, err
	}
	catalog.Add("motion.css", "text/css; charset=utf-8", []byte(motion.Stylesheet()))
	staticURL := paths.URL(routepath.StaticPrefix)
	assets := webtemplates.Assets{
		Stylesheet: catalog.URL(staticURL, "site.css"),
		Motion:     catalog.URL(staticURL, "motion.css"),
		Script:     catalog.URL(staticURL, "site.js"),
		Manifest:   paths.URL(routepath.Manifest),
		Favicon:    catalog.URL(staticURL, "favicon.svg"),
	}

	gate := readiness.New(readiness.Options{
		MinimumDuration: config.MinimumLoad,
		Development:     !config.Mode.IsProduction(),
		Logger:          logger,
	})

	var limiter *contactform.Limiter
	if config.ContactRateInterval > 0 {
		limiter = contactform.NewLimiter(rate.Every(config.ContactRateInterval), config.ContactRateBurst)
	} else {
		limiter = contactform.NewLimiter(0, config.ContactRateBurst)
	}
	var inbox storage.Inbox
	if deps.Inbox != nil {
		inbox = deps.Inbox
	}

	features := modules.DefaultModules(modules.Dependencies{
		Paths:       paths,
		Site:        store.Current,
		Assets:      assets,
		Inbox:       inbox,
		SubmitDelay: config.SubmitDelay,
		Limiter:     limiter,
		Logger:      logger,
		RequestSchemePolicy: requestmeta.SchemePolicy{
			TrustForwardedProto: config.TrustForwardedProto,
			TrustForwardedFor:   config.TrustForwardedFor,
		},
		Now: deps.Now,
	})
	pagesHandler, err := app.Compose(app.ComposeInput{Modules: features})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	readOnly := httpx.AllowMethods(http.MethodGet)
	mux.Handle(routepath.Ready, httpx.Chain(gate.Handler(), readOnly))
	mux.Handle(routepath.Manifest, httpx.Chain(manifest.Handler(config.Mode, paths.Base()), readOnly))
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(strings.TrimSuffix(routepath.StaticPrefix, "/"), catalog.Handler()))
	for _, name := range rootAssets {
		mux.Handle("/"+name, catalog.Handler())
	}
	mux.Handle(routepath.Root, pagesHandler)

	gzip, err := httpx.Gzip()
	if err != nil {
		return nil, err
	}
	s := &Site{
		Mode:    config.Mode,
		Paths:   paths,
		Gate:    gate,
		Content: store,
		Catalog: catalog,
		Assets:  assets,
		pages:   mux,
		logger:  logger,
	}
	if deps.Inbox != nil {
		s.inbox = deps.Inbox
	}
	s.Handler = httpx.Chain(
		stripBase(paths, mux),
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.Trace(),
		gzip,
		observability.RequestLogger(logger),
		csp.Middleware(config.Mode),
		gate.Middleware(s.loaderHandler(), s.bypassGate),
	)
	return s, nil
}

// Tasks returns the preparation work the readiness gate waits on.
func (s *Site) Tasks() []readiness.Named {
	tasks := []readiness.Named{
		{Name: "content", Run: func(context.Context) error {
			site := s.Content.Current()
			if site == nil {
				return errors.New("site content is not loaded")
			}
			return site.Validate()
		}},
		{Name: "pages", Run: s.warmPages},
	}
	if s.inbox != nil {
		tasks = append(tasks, readiness.Named{Name: "inbox", Run: func(ctx context.Context) error {
			_, err := s.inbox.CountContactMessages(ctx)
			return err
		}})
	}
	return tasks
}

// ServePage serves one base-relative request past the gate and the
// middleware chain. Build tooling renders pages through it.
func (s *Site) ServePage(w http.ResponseWriter, r *http.Request) {
	s.pages.ServeHTTP(w, r)
}

// warmPages renders every navigable page once so template or content
// failures surface before the gate opens.
func (s *Site) warmPages(ctx context.Context) error {
	var errs []error
	for _, item := range routepath.NavItems(routepath.NewPaths(""), routepath.Root) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.Route.Path(), nil)
		if err != nil {
			return err
		}
		rec := newBufferWriter()
		s.pages.ServeHTTP(rec, req)
		if rec.status != http.StatusOK {
			errs = append(errs, fmt.Errorf("warm %s: status %d", item.Route.Path(), rec.status))
		}
	}
	return errors.Join(errs...)
}

func (s *Site) bypassGate(r *http.Request) bool {
	path, ok := s.Paths.Strip(r.URL.Path)
	if !ok {
		return false
	}
	if path == routepath.Health || path == routepath.Ready || path == routepath.Manifest {
		return true
	}
	if strings.HasPrefix(path, routepath.StaticPrefix) {
		return true
	}
	for _, name := range rootAssets {
		if path == "/"+name {
			return true
		}
	}
	return false
}

func (s *Site) loaderHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc, lang := webi18n.ResolveLocalizer(w, r)
		view := webtemplates.LoaderView{
			Lang:       lang,
			Loc:        loc,
			Assets:     s.Assets,
			ReadyURL:   s.Paths.URL(routepath.Ready),
			RetryAfter: readiness.RetryAfterSeconds,
		}
		if site := s.Content.Current(); site != nil {
			view.Name = site.Profile.Name
			view.Role = site.Profile.Role
		}
		var buf bytes.Buffer
		if err := webtemplates.Loader(view).Render(r.Context(), &buf); err != nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		_ = httpx.WriteHTML(w, http.StatusServiceUnavailable, buf.String())
	})
}

// stripBase serves requests under the deploy base with base-relative paths.
// Anything outside the base is sent to the home page.
func stripBase(paths routepath.Paths, next http.Handler) http.Handler {
	if paths.Base() == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, ok := paths.Strip(r.URL.Path)
		if !ok {
			httpx.WriteRedirect(w, r, paths.Route(routepath.RouteHome))
			return
		}
		r2 := r.Clone(r.Context())
		r2.URL.Path = path
		r2.URL.RawPath = ""
		next.ServeHTTP(w, r2)
	})
}

// bufferWriter collects a response in memory.
type bufferWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferWriter() *bufferWriter {
	return &bufferWriter{header: http.Header{}}
}

func (b *bufferWriter) Header() http.Header { return b.header }

func (b *bufferWriter) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}
