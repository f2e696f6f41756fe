// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/rkprasad/portfolio/internal/services/web/platform/errors"
	webi18n "github.com/rkprasad/portfolio/internal/services/web/platform/i18n"
	"github.com/rkprasad/portfolio/internal/services/web/platform/pagerender"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	webtemplates "github.com/rkprasad/portfolio/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page for full-page and htmx
// requests. Statuses outside 404 and 5xx are reported as 500.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, shell pagerender.Shell) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, shell, pagerender.Page{
		Loc:        loc,
		Lang:       lang,
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(statusCode, loc, shell.Paths.Route(routepath.RouteHome)),
	})
	if err != nil {
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, shell pagerender.Shell) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, shell)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
