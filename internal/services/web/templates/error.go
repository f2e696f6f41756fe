package templates

import (
	"net/http"

	"github.com/a-h/templ"
)

const (
	errorTitleNotFoundKey    = "error.not_found.title"
	errorTitleServerErrKey   = "error.server.title"
	errorMessageNotFoundKey  = "error.not_found.message"
	errorMessageServerErrKey = "error.server.message"
)

// ErrorView is the error state body.
type ErrorView struct {
	Loc     Localizer
	Status  int
	Heading string
	Message string
	HomeURL string
}

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorTitleNotFoundKey)
	}
	return T(loc, errorTitleServerErrKey)
}

// ErrorState renders the error body for statusCode.
func ErrorState(statusCode int, loc Localizer, homeURL string) templ.Component {
	status := normalizeErrorStatus(statusCode)
	message := T(loc, errorMessageServerErrKey)
	if status == http.StatusNotFound {
		message = T(loc, errorMessageNotFoundKey)
	}
	return render("error", ErrorView{
		Loc:     loc,
		Status:  status,
		Heading: ErrorPageTitle(status, loc),
		Message: message,
		HomeURL: homeURL,
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
