package templates

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/rkprasad/portfolio/internal/services/web/contact"
	"github.com/rkprasad/portfolio/internal/services/web/content"
	"github.com/rkprasad/portfolio/internal/services/web/platform/notification"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
)

// Section anchors of the single page layout.
const (
	SectionHero     = "hero"
	SectionSkills   = "skills"
	SectionAbout    = "about"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// HeroView is the landing section.
type HeroView struct {
	Loc         Localizer
	Profile     content.Profile
	ProjectsURL string
	ContactURL  string
}

// NewHeroView builds the hero section.
func NewHeroView(loc Localizer, paths routepath.Paths, site *content.Site) HeroView {
	view := HeroView{
		Loc:         loc,
		ProjectsURL: paths.Route(routepath.RouteProjects),
		ContactURL:  paths.Route(routepath.RouteContact),
	}
	if site != nil {
		view.Profile = site.Profile
	}
	return view
}

// SkillsView lists skills, tools and current learning.
type SkillsView struct {
	Loc      Localizer
	Skills   []content.Skill
	Tools    []content.Tool
	Learning []content.LearningItem
}

// NewSkillsView builds the skills section.
func NewSkillsView(loc Localizer, site *content.Site) SkillsView {
	view := SkillsView{Loc: loc}
	if site != nil {
		view.Skills = site.Skills
		view.Tools = site.Tools
		view.Learning = site.Learning
	}
	return view
}

// AboutView is the biography section.
type AboutView struct {
	Loc          Localizer
	Profile      content.Profile
	Values       []content.Value
	Achievements []content.Achievement
}

// NewAboutView builds the about section.
func NewAboutView(loc Localizer, site *content.Site) AboutView {
	view := AboutView{Loc: loc}
	if site != nil {
		view.Profile = site.Profile
		view.Values = site.Values
		view.Achievements = site.Achievements
	}
	return view
}

// CarouselView is the featured project carousel at one position.
type CarouselView struct {
	Loc             Localizer
	Project         content.Project
	HasProject      bool
	Index           int
	Total           int
	PrevURL         string
	NextURL         string
	PrevFragmentURL string
	NextFragmentURL string
}

// Position is the one-based index shown to visitors.
func (v CarouselView) Position() int {
	return v.Index + 1
}

// NewCarouselView builds the carousel at index, wrapped into range. category
// is carried through the full page links so the grid keeps its filter.
func NewCarouselView(loc Localizer, paths routepath.Paths, site *content.Site, index int, category string) CarouselView {
	featured := site.Featured()
	carousel := content.Carousel{Len: len(featured)}
	index = carousel.Clamp(index)
	view := CarouselView{Loc: loc, Index: index, Total: len(featured)}
	if len(featured) == 0 {
		return view
	}
	view.Project = featured[index]
	view.HasProject = true
	view.PrevURL = projectsPageURL(paths, carousel.Prev(index), category)
	view.NextURL = projectsPageURL(paths, carousel.Next(index), category)
	view.PrevFragmentURL = featuredFragmentURL(paths, index, "prev", category)
	view.NextFragmentURL = featuredFragmentURL(paths, index, "next", category)
	return view
}

// CategoryOption is one filter button.
type CategoryOption struct {
	Name        string
	URL         string
	FragmentURL string
	Active      bool
}

// GridView is the filtered list of non-featured projects.
type GridView struct {
	Loc        Localizer
	Category   string
	Categories []CategoryOption
	Projects   []content.Project
}

// NewGridView builds the grid filtered by category. featured keeps the
// carousel position in full page filter links.
func NewGridView(loc Localizer, paths routepath.Paths, site *content.Site, category string, featured int) GridView {
	category = site.NormalizeCategory(category)
	view := GridView{
		Loc:      loc,
		Category: category,
		Projects: site.FilterProjects(category),
	}
	for _, name := range site.Categories() {
		view.Categories = append(view.Categories, CategoryOption{
			Name:        name,
			URL:         projectsPageURL(paths, featured, name),
			FragmentURL: listFragmentURL(paths, name, featured),
			Active:      name == category,
		})
	}
	return view
}

// ProjectsView is the projects section.
type ProjectsView struct {
	Loc      Localizer
	Carousel CarouselView
	Grid     GridView
}

// OptionView is a rendered select option.
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// FormView is the contact form with submitted values and field errors.
type FormView struct {
	Loc             Localizer
	Action          string
	Values          contact.Form
	Errors          contact.Errors
	BudgetOptions   []OptionView
	TimelineOptions []OptionView
	SubjectMax      int
	MessageMax      int
	Notification    *notification.Notification
}

// NewFormView builds the form. A nil errs renders a clean form.
func NewFormView(loc Localizer, paths routepath.Paths, values contact.Form, errs contact.Errors, notice *notification.Notification) FormView {
	return FormView{
		Loc:             loc,
		Action:          paths.Route(routepath.RouteContact),
		Values:          values,
		Errors:          errs,
		BudgetOptions:   optionViews(loc, contact.BudgetOptions, values.Budget),
		TimelineOptions: optionViews(loc, contact.TimelineOptions, values.Timeline),
		SubjectMax:      contact.SubjectMaxLength,
		MessageMax:      contact.MessageMaxLength,
		Notification:    notice,
	}
}

// Error returns the localized error of field, or "".
func (v FormView) Error(field string) string {
	key := v.Errors[contact.Field(field)]
	if key == "" {
		return ""
	}
	return T(v.Loc, key)
}

// Invalid reports whether any field failed validation.
func (v FormView) Invalid() bool {
	return len(v.Errors) > 0
}

// ContactView is the contact section.
type ContactView struct {
	Loc      Localizer
	Channels []content.ContactChannel
	Social   []content.SocialLink
	Form     FormView
}

// NewContactView builds the contact section around form.
func NewContactView(loc Localizer, site *content.Site, form FormView) ContactView {
	view := ContactView{Loc: loc, Form: form}
	if site != nil {
		view.Channels = site.Contact
		view.Social = site.Social
	}
	return view
}

// SectionLink is one entry of the single page quick navigation.
type SectionLink struct {
	ID    string
	Title string
}

// SinglePageView stacks every section.
type SinglePageView struct {
	Loc      Localizer
	Sections []SectionLink
	Hero     HeroView
	Skills   SkillsView
	About    AboutView
	Projects ProjectsView
	Contact  ContactView
}

// SectionLinks returns the quick navigation entries of site.
func SectionLinks(site *content.Site) []SectionLink {
	if site == nil {
		return nil
	}
	links := make([]SectionLink, 0, len(site.Sections))
	for _, section := range site.Sections {
		links = append(links, SectionLink{ID: section.ID, Title: section.Title})
	}
	return links
}

// HomeView is the hero plus skills.
type HomeView struct {
	Hero   HeroView
	Skills SkillsView
}

// Home renders the home page body.
func Home(view HomeView) templ.Component { return render("home", view) }

// About renders the about page body.
func About(view AboutView) templ.Component { return render("about-page", view) }

// Projects renders the projects page body.
func Projects(view ProjectsView) templ.Component { return render("projects-page", view) }

// FeaturedCarousel renders the carousel fragment.
func FeaturedCarousel(view CarouselView) templ.Component { return render("carousel", view) }

// ProjectGrid renders the filtered grid fragment.
func ProjectGrid(view GridView) templ.Component { return render("grid", view) }

// Contact renders the contact page body.
func Contact(view ContactView) templ.Component { return render("contact-page", view) }

// ContactForm renders the form fragment.
func ContactForm(view FormView) templ.Component { return render("contact-form", view) }

// SinglePage renders every section on one page.
func SinglePage(view SinglePageView) templ.Component { return render("single-page", view) }

func projectsPageURL(paths routepath.Paths, featured int, category string) string {
	query := url.Values{}
	query.Set(routepath.FeaturedQueryKey, strconv.Itoa(featured))
	if category != "" && category != content.AllCategory {
		query.Set(routepath.CategoryQueryKey, category)
	}
	return paths.WithQuery(routepath.Projects, query)
}

// Fragment URLs carry the other half of the page state so fragments can
// build full page links and fallbacks without losing it.

func featuredFragmentURL(paths routepath.Paths, index int, direction string, category string) string {
	query := url.Values{}
	query.Set(routepath.IndexQueryKey, strconv.Itoa(index))
	query.Set(routepath.DirectionQueryKey, direction)
	if category != "" && category != content.AllCategory {
		query.Set(routepath.CategoryQueryKey, category)
	}
	return paths.WithQuery(routepath.ProjectsFeatured, query)
}

func listFragmentURL(paths routepath.Paths, category string, featured int) string {
	query := url.Values{}
	query.Set(routepath.FeaturedQueryKey, strconv.Itoa(featured))
	if category != "" && category != content.AllCategory {
		query.Set(routepath.CategoryQueryKey, category)
	}
	return paths.WithQuery(routepath.ProjectsList, query)
}

func optionViews(loc Localizer, options []contact.Option, selected string) []OptionView {
	views := make([]OptionView, 0, len(options))
	for _, option := range options {
		views = append(views, OptionView{
			Value:    option.Value,
			Label:    T(loc, option.LabelKey),
			Selected: option.Value == selected,
		})
	}
	return views
}
