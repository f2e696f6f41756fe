package projects

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rkprasad/portfolio/internal/services/web/content"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	webtemplates "github.com/rkprasad/portfolio/internal/services/web/templates"
)

// selection is the carousel position and grid filter carried by a request.
type selection struct {
	Featured  int
	Direction string
	Category  string
}

// parseSelection reads the page query. Missing or malformed indexes select
// the first featured project.
func parseSelection(query url.Values, indexKey string) selection {
	index, err := strconv.Atoi(strings.TrimSpace(query.Get(indexKey)))
	if err != nil {
		index = 0
	}
	return selection{
		Featured:  index,
		Direction: strings.TrimSpace(query.Get(routepath.DirectionQueryKey)),
		Category:  strings.TrimSpace(query.Get(routepath.CategoryQueryKey)),
	}
}

type service struct{}

func newService() service {
	return service{}
}

func (service) pageView(loc webtemplates.Localizer, paths routepath.Paths, site *content.Site, sel selection) webtemplates.ProjectsView {
	return webtemplates.ProjectsView{
		Loc:      loc,
		Carousel: webtemplates.NewCarouselView(loc, paths, site, sel.Featured, sel.Category),
		Grid:     webtemplates.NewGridView(loc, paths, site, sel.Category, sel.Featured),
	}
}

// carouselView steps from the requested index in the requested direction.
func (service) carouselView(loc webtemplates.Localizer, paths routepath.Paths, site *content.Site, sel selection) webtemplates.CarouselView {
	carousel := content.Carousel{Len: len(site.Featured())}
	return webtemplates.NewCarouselView(loc, paths, site, carousel.Step(sel.Featured, sel.Direction), sel.Category)
}

func (service) gridView(loc webtemplates.Localizer, paths routepath.Paths, site *content.Site, sel selection) webtemplates.GridView {
	return webtemplates.NewGridView(loc, paths, site, sel.Category, sel.Featured)
}

// pageURL is the full page equivalent of a fragment request.
func pageURL(paths routepath.Paths, featured int, category string) string {
	query := url.Values{}
	query.Set(routepath.FeaturedQueryKey, strconv.Itoa(featured))
	if category != "" && category != content.AllCategory {
		query.Set(routepath.CategoryQueryKey, category)
	}
	return paths.WithQuery(routepath.Projects, query)
}
