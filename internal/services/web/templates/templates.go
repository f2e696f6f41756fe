// Package templates renders the site's HTML. Pages are html/template
// documents embedded in the binary and exposed as templ components so
// handlers compose them with layouts the same way for full page and
// fragment responses.
package templates

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/rkprasad/portfolio/internal/platform/icons"
	"github.com/rkprasad/portfolio/internal/services/web/contact"
	"github.com/rkprasad/portfolio/internal/services/web/content"
	"github.com/rkprasad/portfolio/internal/services/web/motion"
	"github.com/rkprasad/portfolio/internal/services/web/platform/notification"
)

//go:embed html/*.html
var htmlFS embed.FS

var pages = template.Must(template.New("pages").Funcs(funcs).ParseFS(htmlFS, "html/*.html"))

var funcs = template.FuncMap{
	"t":           translate,
	"motion":      motionClass,
	"stagger":     func() string { return motion.StaggerContainer.Class() },
	"fastStagger": func() string { return motion.FastStaggerContainer.Class() },
	"delay":       motion.StaggerContainer.DelayStyle,
	"length":      contact.Length,
	"skillBar":    skillBar,
	"progress":    progressStyle,
	"href":        trustedHref,
	"notice":      newNoticeView,
	"add":         func(a, b int) int { return a + b },
	"digits":      strconv.Itoa,
	"icon":        iconHTML,
	"sprite":      func() template.HTML { return template.HTML(icons.LucideSprite()) },
}

func translate(loc Localizer, key string, args ...any) string {
	return T(loc, key, args...)
}

func motionClass(name string) string {
	preset, ok := motion.Lookup(name)
	if !ok {
		return ""
	}
	return preset.Class()
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

const defaultSkillColor = "#3b82f6"

func skillBar(skill content.Skill) template.CSS {
	from, to := safeColor(skill.ColorFrom), safeColor(skill.ColorTo)
	return template.CSS("width: " + percent(skill.Level) + "; background: linear-gradient(90deg, " + from + ", " + to + ")")
}

func progressStyle(value int) template.CSS {
	return template.CSS("width: " + percent(value))
}

func percent(value int) string {
	value = min(max(value, 0), 100)
	return strconv.Itoa(value) + "%"
}

func safeColor(value string) string {
	if colorPattern.MatchString(value) {
		return value
	}
	return defaultSkillColor
}

// trustedHref admits the link schemes site content uses; anything else
// collapses to "#".
func trustedHref(raw string) template.URL {
	raw = strings.TrimSpace(raw)
	for _, prefix := range []string{"https://", "http://", "mailto:", "tel:", "#", "/"} {
		if strings.HasPrefix(raw, prefix) && !strings.HasPrefix(raw, "//") {
			return template.URL(raw)
		}
	}
	return template.URL("#")
}

func iconHTML(raw string) template.HTML {
	symbol := icons.LucideSymbolID(icons.LucideNameOrDefault(icons.Parse(raw)))
	return template.HTML(`<svg class="icon" aria-hidden="true"><use href="#` + symbol + `"></use></svg>`)
}

type noticeView struct {
	Loc          Localizer
	Notification notification.Notification
}

func newNoticeView(loc Localizer, n *notification.Notification) noticeView {
	if n == nil {
		return noticeView{Loc: loc}
	}
	return noticeView{Loc: loc, Notification: *n}
}

// Title returns the localized title.
func (v noticeView) Title() string {
	return T(v.Loc, v.Notification.Title)
}

// Message returns the localized message.
func (v noticeView) Message() string {
	if v.Notification.Message == "" {
		return ""
	}
	return T(v.Loc, v.Notification.Message)
}

func render(name string, data any) templ.Component {
	return templ.FromGoHTML(pages.Lookup(name), data)
}

func renderChildren(ctx context.Context) (template.HTML, error) {
	var buf bytes.Buffer
	children := templ.GetChildren(ctx)
	if err := children.Render(templ.ClearChildren(ctx), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func withChildren(name string, data func(template.HTML) any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := renderChildren(ctx)
		if err != nil {
			return err
		}
		return pages.ExecuteTemplate(w, name, data(body))
	})
}
