// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/rkprasad/portfolio/internal/services/web/content"
	module "github.com/rkprasad/portfolio/internal/services/web/module"
	flashnotice "github.com/rkprasad/portfolio/internal/services/web/platform/flash"
	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
	webi18n "github.com/rkprasad/portfolio/internal/services/web/platform/i18n"
	"github.com/rkprasad/portfolio/internal/services/web/platform/notification"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	webtemplates "github.com/rkprasad/portfolio/internal/services/web/templates"
)

// Shell carries the site-wide state every document needs.
type Shell struct {
	Paths  routepath.Paths
	Site   module.ResolveSite
	Assets webtemplates.Assets
	Now    func() time.Time
}

// Page describes a module page response for both full-page and fragment
// flows.
type Page struct {
	// Loc and Lang reuse a localizer the handler already resolved; when Loc
	// is nil the request is resolved again.
	Loc        webtemplates.Localizer
	Lang       string
	Title      string
	StatusCode int
	Fragment   templ.Component
	// Notification is shown on full pages ahead of any pending flash.
	Notification *notification.Notification
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes page as a full document, or as the main content fragment
// for htmx requests. Flash notices are consumed only by full documents so a
// fragment swap never swallows them.
func WritePage(w http.ResponseWriter, r *http.Request, shell Shell, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	loc, lang := page.Loc, page.Lang
	if loc == nil {
		loc, lang = webi18n.ResolveLocalizer(w, r)
	}
	title := webtemplates.ComposePageTitle(loc, page.Title)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.MainContent(title).Render(ctx, &buf); err != nil {
			return err
		}
		return write(w, statusCode, buf.Bytes())
	}

	chrome := shell.Chrome(r, loc, lang, title)
	chrome.Notification = page.Notification
	if notice, ok := flashnotice.ReadAndClear(w, r); ok && chrome.Notification == nil {
		chrome.Notification = &notice
	}
	if err := webtemplates.Layout(chrome).Render(ctx, &buf); err != nil {
		return err
	}
	return write(w, statusCode, buf.Bytes())
}

// Chrome builds the layout context for the request.
func (s Shell) Chrome(r *http.Request, loc webtemplates.Localizer, lang string, title string) webtemplates.Chrome {
	path, rawQuery := routepath.Root, ""
	if r != nil && r.URL != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	chrome := webtemplates.Chrome{
		Lang:        lang,
		Loc:         loc,
		Title:       title,
		Description: webtemplates.T(loc, "meta.description"),
		HomeURL:     s.Paths.Route(routepath.RouteHome),
		ReadyURL:    s.Paths.URL(routepath.Ready),
		Nav:         routepath.NavItems(s.Paths, path),
		Languages:   webi18n.LanguageOptions(loc, s.Paths.URL(path), rawQuery, lang),
		Assets:      s.Assets,
		Year:        s.now().Year(),
	}
	if site := s.CurrentSite(); site != nil {
		chrome.Profile = site.Profile
		chrome.Social = site.Social
		chrome.Contact = site.Contact
	}
	return chrome
}

// CurrentSite resolves the live site content, or nil.
func (s Shell) CurrentSite() *content.Site {
	if s.Site == nil {
		return nil
	}
	return s.Site()
}

func (s Shell) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func write(w http.ResponseWriter, statusCode int, body []byte) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
	return nil
}
