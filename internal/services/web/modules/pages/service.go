package pages

import (
	"net/url"
	"strconv"

	contactform "github.com/rkprasad/portfolio/internal/services/web/contact"
	"github.com/rkprasad/portfolio/internal/services/web/content"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	webtemplates "github.com/rkprasad/portfolio/internal/services/web/templates"
)

// service assembles page view models from site content.
type service struct{}

func newService() service {
	return service{}
}

func (service) homeView(loc webtemplates.Localizer, paths routepath.Paths, site *content.Site) webtemplates.HomeView {
	return webtemplates.HomeView{
		Hero:   webtemplates.NewHeroView(loc, paths, site),
		Skills: webtemplates.NewSkillsView(loc, site),
	}
}

func (service) aboutView(loc webtemplates.Localizer, site *content.Site) webtemplates.AboutView {
	return webtemplates.NewAboutView(loc, site)
}

// singlePageView stacks every section. The projects section honors the same
// featured and category query keys as the projects page.
func (s service) singlePageView(loc webtemplates.Localizer, paths routepath.Paths, site *content.Site, query url.Values) webtemplates.SinglePageView {
	featured, _ := strconv.Atoi(query.Get(routepath.FeaturedQueryKey))
	category := query.Get(routepath.CategoryQueryKey)
	form := webtemplates.NewFormView(loc, paths, contactform.Form{}, nil, nil)
	return webtemplates.SinglePageView{
		Loc:      loc,
		Sections: webtemplates.SectionLinks(site),
		Hero:     webtemplates.NewHeroView(loc, paths, site),
		Skills:   webtemplates.NewSkillsView(loc, site),
		About:    webtemplates.NewAboutView(loc, site),
		Projects: webtemplates.ProjectsView{
			Loc:      loc,
			Carousel: webtemplates.NewCarouselView(loc, paths, site, featured, category),
			Grid:     webtemplates.NewGridView(loc, paths, site, category, featured),
		},
		Contact: webtemplates.NewContactView(loc, site, form),
	}
}
