package templates

import (
	"html/template"
	"strings"

	"github.com/a-h/templ"
	"github.com/rkprasad/portfolio/internal/services/web/content"
	webi18n "github.com/rkprasad/portfolio/internal/services/web/platform/i18n"
	"github.com/rkprasad/portfolio/internal/services/web/platform/notification"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
)

// Assets holds the fingerprinted URLs referenced by every document.
type Assets struct {
	Stylesheet string
	Motion     string
	Script     string
	Manifest   string
	Favicon    string
}

// Chrome provides shared layout context for pages.
type Chrome struct {
	Lang         string
	Loc          Localizer
	Title        string
	Description  string
	HomeURL      string
	ReadyURL     string
	Nav          []routepath.NavItem
	Languages    []webi18n.LanguageOption
	Profile      content.Profile
	Social       []content.SocialLink
	Contact      []content.ContactChannel
	Assets       Assets
	Notification *notification.Notification
	Year         int
}

// ComposePageTitle appends the site name to a page title.
func ComposePageTitle(loc Localizer, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return T(loc, "title.site")
	}
	return T(loc, "title.page", title)
}

type layoutData struct {
	Chrome  Chrome
	Title   string
	Content template.HTML
}

// Layout renders the full document around the child component.
func Layout(chrome Chrome) templ.Component {
	return withChildren("layout", func(body template.HTML) any {
		return layoutData{Chrome: chrome, Title: chrome.Title, Content: body}
	})
}

// MainContent renders only the page wrapper around the child component, for
// fragment navigation.
func MainContent(title string) templ.Component {
	return withChildren("page", func(body template.HTML) any {
		return layoutData{Title: title, Content: body}
	})
}

// Notification renders one toast.
func Notification(loc Localizer, n notification.Notification) templ.Component {
	return render("notification", newNoticeView(loc, &n))
}

// LoaderView is the document shown while the site prepares.
type LoaderView struct {
	Lang       string
	Loc        Localizer
	Name       string
	Role       string
	Assets     Assets
	ReadyURL   string
	RetryAfter int
}

// Loader renders the loading document.
func Loader(view LoaderView) templ.Component {
	return render("loader", view)
}
