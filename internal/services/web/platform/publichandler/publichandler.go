// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/rkprasad/portfolio/internal/services/web/content"
	module "github.com/rkprasad/portfolio/internal/services/web/module"
	apperrors "github.com/rkprasad/portfolio/internal/services/web/platform/errors"
	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
	webi18n "github.com/rkprasad/portfolio/internal/services/web/platform/i18n"
	"github.com/rkprasad/portfolio/internal/services/web/platform/notification"
	"github.com/rkprasad/portfolio/internal/services/web/platform/pagerender"
	"github.com/rkprasad/portfolio/internal/services/web/platform/weberror"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	webtemplates "github.com/rkprasad/portfolio/internal/services/web/templates"
)

// Base provides shared error handling and page rendering. Embed this in
// handler structs to get WritePage, WriteNotFound and WriteError.
type Base struct {
	shell pagerender.Shell
}

// Option configures a Base.
type Option func(*Base)

// WithPaths sets the deploy base path used for every generated URL.
func WithPaths(paths routepath.Paths) Option {
	return func(b *Base) { b.shell.Paths = paths }
}

// WithSite attaches the live content resolver.
func WithSite(site module.ResolveSite) Option {
	return func(b *Base) { b.shell.Site = site }
}

// WithAssets sets the fingerprinted asset URLs.
func WithAssets(assets webtemplates.Assets) Option {
	return func(b *Base) { b.shell.Assets = assets }
}

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(b *Base) { b.shell.Now = now }
}

// NewBase builds a handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	return b
}

// Paths returns the deploy base path helper.
func (b Base) Paths() routepath.Paths {
	return b.shell.Paths
}

// Site returns the live site content, or nil when none is configured.
func (b Base) Site() *content.Site {
	return b.shell.CurrentSite()
}

// Shell exposes the page shell for callers rendering outside modules.
func (b Base) Shell() pagerender.Shell {
	return b.shell
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

// WritePage renders a page, falling back to the error page when rendering
// fails.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, lang string, title string, statusCode int, body templ.Component) {
	b.WritePageWithNotification(w, r, loc, lang, title, statusCode, body, nil)
}

// WritePageWithNotification renders a page with an inline notification on
// full document responses.
func (b Base) WritePageWithNotification(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, lang string, title string, statusCode int, body templ.Component, notice *notification.Notification) {
	err := pagerender.WritePage(w, r, b.shell, pagerender.Page{
		Loc:          loc,
		Lang:         lang,
		Title:        title,
		StatusCode:   statusCode,
		Fragment:     body,
		Notification: notice,
	})
	if err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders a bare component, for htmx swaps of page parts.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, body templ.Component) {
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	var buf bytes.Buffer
	if err := body.Render(httpx.RequestContext(r), &buf); err != nil {
		b.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "HX-Request")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// WriteNotFound renders a localized 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.shell)
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	if err == nil {
		err = apperrors.E(apperrors.KindUnknown, "unknown error")
	}
	weberror.WriteModuleError(w, r, err, b.shell)
}
