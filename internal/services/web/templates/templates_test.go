package templates

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/rkprasad/portfolio/internal/services/web/contact"
	"github.com/rkprasad/portfolio/internal/services/web/content"
	webi18n "github.com/rkprasad/portfolio/internal/services/web/platform/i18n"
	"github.com/rkprasad/portfolio/internal/services/web/platform/notification"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	"golang.org/x/text/language"
)

func renderString(t *testing.T, component templ.Component, ctx context.Context) string {
	t.Helper()
	if ctx == nil {
		ctx = context.Background()
	}
	var b strings.Builder
	if err := component.Render(ctx, &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func testSite(t *testing.T) *content.Site {
	t.Helper()
	site, err := content.Embedded()
	if err != nil {
		t.Fatalf("content.Embedded() error = %v", err)
	}
	return site
}

func englishLoc() Localizer {
	return webi18n.Printer(language.English)
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func TestLayoutWrapsChildrenWithChrome(t *testing.T) {
	t.Parallel()

	paths := routepath.NewPaths("")
	loc := englishLoc()
	chrome := Chrome{
		Lang:    "en",
		Loc:     loc,
		Title:   ComposePageTitle(loc, "About"),
		HomeURL: paths.Route(routepath.RouteHome),
		Nav:     routepath.NavItems(paths, routepath.About),
		Profile: content.Profile{Name: "RK Prasad"},
		Year:    2026,
		Notification: &notification.Notification{
			Kind:  notification.KindSuccess,
			Title: "contact.success.title",
		},
	}
	ctx := templ.WithChildren(context.Background(), textComponent(`<section id="fragment-root">ok</section>`))
	body := renderString(t, Layout(chrome), ctx)

	for _, marker := range []string{
		"<!DOCTYPE html>",
		`<title>About | RK Prasad</title>`,
		`id="main"`,
		`id="fragment-root"`,
		`href="/about" class="active" aria-current="page"`,
		"Message Sent Successfully!",
		"© 2026 RK Prasad. All rights reserved.",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestMainContentOmitsDocument(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), textComponent(`<p id="child">x</p>`))
	body := renderString(t, MainContent("Projects"), ctx)
	if strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("fragment contains document wrapper: %q", body)
	}
	if !strings.Contains(body, `data-title="Projects"`) || !strings.Contains(body, `id="child"`) {
		t.Fatalf("body = %q", body)
	}
}

func TestContactFormRendersErrorsAndValues(t *testing.T) {
	t.Parallel()

	loc := englishLoc()
	values := contact.Form{Name: "A", Email: "bad", Subject: "Hello there", Budget: "5k-10k"}
	view := NewFormView(loc, routepath.NewPaths("/protfolio-rk"), values, contact.Validate(values), nil)
	body := renderString(t, ContactForm(view), nil)

	for _, marker := range []string{
		`action="/protfolio-rk/contact"`,
		"Name must be at least 2 characters",
		"Invalid email address",
		"Message is required",
		`value="Hello there"`,
		"11/100 characters",
		"0/1000 characters",
		`<option value="5k-10k" selected>$5,000 - $10,000</option>`,
		"Please fix the highlighted fields.",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestPortugueseNumbersKeepPlainDigits(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.BrazilianPortuguese)
	form := renderString(t, ContactForm(NewFormView(loc, routepath.NewPaths(""), contact.Form{}, nil, nil)), nil)
	if !strings.Contains(form, "0/1000 caracteres") {
		t.Fatalf("form missing plain counter: %q", form)
	}

	chrome := Chrome{Lang: "pt-BR", Loc: loc, Profile: content.Profile{Name: "RK Prasad"}, Year: 2026}
	ctx := templ.WithChildren(context.Background(), textComponent("<p>ok</p>"))
	body := renderString(t, Layout(chrome), ctx)
	if !strings.Contains(body, "© 2026 RK Prasad.") {
		t.Fatalf("layout missing plain year: %q", body)
	}
}

func TestContactFormCleanStateHasNoErrors(t *testing.T) {
	t.Parallel()

	notice := notification.Success("contact.success.title", "contact.success.message")
	view := NewFormView(englishLoc(), routepath.NewPaths(""), contact.Form{}, nil, &notice)
	body := renderString(t, ContactForm(view), nil)
	if strings.Contains(body, "field-error") || strings.Contains(body, "form-summary") {
		t.Fatalf("clean form rendered errors: %q", body)
	}
	if !strings.Contains(body, "get back to you within 24 hours") {
		t.Fatalf("clean form missing notification: %q", body)
	}
	if !strings.Contains(body, `data-auto-close="5000"`) {
		t.Fatalf("notification missing auto close: %q", body)
	}
}

func TestCarouselWrapsIndex(t *testing.T) {
	t.Parallel()

	site := testSite(t)
	paths := routepath.NewPaths("")
	total := len(site.Featured())
	view := NewCarouselView(englishLoc(), paths, site, -1, "Frontend")
	if view.Index != total-1 {
		t.Fatalf("Index = %d, want %d", view.Index, total-1)
	}
	if view.NextURL != "/projects?category=Frontend&featured=0" {
		t.Fatalf("NextURL = %q", view.NextURL)
	}
	body := renderString(t, FeaturedCarousel(view), nil)
	if !strings.Contains(body, view.Project.Title) || !strings.Contains(body, `id="featured-carousel"`) {
		t.Fatalf("body = %q", body)
	}
}

func TestCarouselWithoutFeaturedProjects(t *testing.T) {
	t.Parallel()

	view := NewCarouselView(englishLoc(), routepath.NewPaths(""), &content.Site{}, 3, "")
	if view.HasProject || view.Index != 0 {
		t.Fatalf("view = %+v", view)
	}
	body := renderString(t, FeaturedCarousel(view), nil)
	if !strings.Contains(body, "No featured projects available") {
		t.Fatalf("body = %q", body)
	}
}

func TestGridFiltersByCategory(t *testing.T) {
	t.Parallel()

	site := testSite(t)
	view := NewGridView(englishLoc(), routepath.NewPaths(""), site, "full stack", 0)
	if view.Category != "Full Stack" {
		t.Fatalf("Category = %q, want Full Stack", view.Category)
	}
	for _, project := range view.Projects {
		if project.Category != "Full Stack" || project.Featured {
			t.Fatalf("unexpected project in grid: %+v", project)
		}
	}
	body := renderString(t, ProjectGrid(view), nil)
	if !strings.Contains(body, `data-fragment="/projects/list?category=Full&#43;Stack&amp;featured=0"`) && !strings.Contains(body, `data-fragment="/projects/list?category=Full+Stack&amp;featured=0"`) {
		t.Fatalf("body missing filter fragment link: %q", body)
	}
	if !strings.Contains(body, `class="active" aria-current="true">Full Stack</a>`) {
		t.Fatalf("body missing active category: %q", body)
	}
}

func TestSinglePageStacksSections(t *testing.T) {
	t.Parallel()

	site := testSite(t)
	loc := englishLoc()
	paths := routepath.NewPaths("")
	view := SinglePageView{
		Loc:      loc,
		Sections: SectionLinks(site),
		Hero:     NewHeroView(loc, paths, site),
		Skills:   NewSkillsView(loc, site),
		About:    NewAboutView(loc, site),
		Projects: ProjectsView{
			Loc:      loc,
			Carousel: NewCarouselView(loc, paths, site, 0, ""),
			Grid:     NewGridView(loc, paths, site, "", 0),
		},
		Contact: NewContactView(loc, site, NewFormView(loc, paths, contact.Form{}, nil, nil)),
	}
	body := renderString(t, SinglePage(view), nil)
	for _, id := range []string{SectionHero, SectionSkills, SectionAbout, SectionProjects, SectionContact} {
		if !strings.Contains(body, `id="`+id+`"`) {
			t.Fatalf("single page missing section %q", id)
		}
		if !strings.Contains(body, `href="#`+id+`"`) {
			t.Fatalf("single page missing quick nav link %q", id)
		}
	}
}

func TestErrorState(t *testing.T) {
	t.Parallel()

	loc := englishLoc()
	body := renderString(t, ErrorState(http.StatusNotFound, loc, "/"), nil)
	if !strings.Contains(body, "Page not found") || !strings.Contains(body, ">404<") {
		t.Fatalf("body = %q", body)
	}
	if got := ErrorPageTitle(http.StatusBadGateway, loc); got != "Something went wrong" {
		t.Fatalf("ErrorPageTitle(502) = %q", got)
	}
}

func TestLoaderRefreshes(t *testing.T) {
	t.Parallel()

	body := renderString(t, Loader(LoaderView{Lang: "en", Loc: englishLoc(), Name: "RK Prasad", Role: "Frontend Developer", RetryAfter: 1, ReadyURL: "/readyz"}), nil)
	for _, marker := range []string{`http-equiv="refresh" content="1"`, "Loading portfolio...", `data-ready-url="/readyz"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("loader missing %q: %q", marker, body)
		}
	}
}

func TestTrustedHref(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"mailto:a@b.co":       "mailto:a@b.co",
		"tel:+91":             "tel:+91",
		"https://example.com": "https://example.com",
		"#":                   "#",
		"javascript:alert(1)": "#",
		"//evil.example":      "#",
	}
	for in, want := range tests {
		if got := string(trustedHref(in)); got != want {
			t.Fatalf("trustedHref(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSkillBarRejectsUnsafeColors(t *testing.T) {
	t.Parallel()

	got := string(skillBar(content.Skill{Level: 120, ColorFrom: "#fff", ColorTo: "red;}"}))
	want := "width: 100%; background: linear-gradient(90deg, #fff, " + defaultSkillColor + ")"
	if got != want {
		t.Fatalf("skillBar() = %q, want %q", got, want)
	}
}

func TestIconHTMLFallsBackToGeneric(t *testing.T) {
	t.Parallel()

	if got := string(iconHTML("github")); !strings.Contains(got, `href="#lucide-github"`) {
		t.Fatalf("iconHTML(github) = %q", got)
	}
	if got := string(iconHTML("no-such-icon")); !strings.Contains(got, `href="#lucide-sparkle"`) {
		t.Fatalf("iconHTML(unknown) = %q", got)
	}
}
