package contact

import (
	"net/http"

	contactform "github.com/rkprasad/portfolio/internal/services/web/contact"
	apperrors "github.com/rkprasad/portfolio/internal/services/web/platform/errors"
	flashnotice "github.com/rkprasad/portfolio/internal/services/web/platform/flash"
	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
	"github.com/rkprasad/portfolio/internal/services/web/platform/notification"
	"github.com/rkprasad/portfolio/internal/services/web/platform/publichandler"
	"github.com/rkprasad/portfolio/internal/services/web/platform/requestmeta"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	webtemplates "github.com/rkprasad/portfolio/internal/services/web/templates"
)

const maxFormBytes = 64 << 10

type handlers struct {
	publichandler.Base
	service     service
	requestMeta requestmeta.SchemePolicy
}

func newHandlers(base publichandler.Base, s service, policy requestmeta.SchemePolicy) handlers {
	return handlers{Base: base, service: s, requestMeta: policy}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	h.writeResult(w, r, loc, lang, http.StatusOK, contactform.Form{}, nil, nil)
}

// handleSubmit validates and submits the form. Full page successes
// redirect with a flash notice; htmx successes get a reset form with the
// notice inline. Failures re-render the submitted values.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if !requestmeta.HasSameOriginProof(r, h.requestMeta) {
		h.WriteError(w, r, apperrors.EK(apperrors.KindForbidden, "contact.error.origin", "contact form posted without same-origin proof"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", err))
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	form := contactform.FormFromValues(r.PostForm)
	errs, err := h.service.submit(r.Context(), form, requestmeta.ClientIP(r, h.requestMeta))
	switch {
	case apperrors.KindOf(err) == apperrors.KindRateLimited:
		notice := notification.Notification{Kind: notification.KindWarning, Title: "contact.error.rate", AutoClose: notification.DefaultAutoClose}
		h.writeResult(w, r, loc, lang, http.StatusTooManyRequests, form, nil, &notice)
	case err != nil:
		notice := notification.Error("contact.error.title", "contact.error.message")
		h.writeResult(w, r, loc, lang, http.StatusServiceUnavailable, form, nil, &notice)
	case !errs.Valid():
		h.writeResult(w, r, loc, lang, http.StatusUnprocessableEntity, form, errs, nil)
	default:
		notice := notification.Success("contact.success.title", "contact.success.message")
		if httpx.IsHTMXRequest(r) {
			h.writeResult(w, r, loc, lang, http.StatusOK, contactform.Form{}, nil, &notice)
			return
		}
		flashnotice.WriteWithPolicy(w, r, notice, h.requestMeta)
		httpx.WriteRedirect(w, r, h.Paths().Route(routepath.RouteContact))
	}
}

// writeResult renders the form fragment for htmx requests and the contact
// page otherwise. notice is inline in the fragment and a toast on the page.
func (h handlers) writeResult(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, lang string, statusCode int, form contactform.Form, errs contactform.Errors, notice *notification.Notification) {
	if httpx.IsHTMXRequest(r) && r.Method == http.MethodPost {
		view := webtemplates.NewFormView(loc, h.Paths(), form, errs, notice)
		h.WriteFragment(w, r, statusCode, webtemplates.ContactForm(view))
		return
	}
	view := webtemplates.NewContactView(loc, h.Site(), webtemplates.NewFormView(loc, h.Paths(), form, errs, nil))
	h.WritePageWithNotification(w, r, loc, lang, webtemplates.T(loc, "nav.contact"), statusCode, webtemplates.Contact(view), notice)
}

// handleRest applies the site catch-all below the contact prefix.
func (h handlers) handleRest(w http.ResponseWriter, r *http.Request) {
	target := h.Paths().Route(routepath.RouteHome)
	if route, ok := routepath.Lookup(r.URL.Path); ok {
		target = h.Paths().Route(route)
	}
	httpx.WriteRedirect(w, r, target)
}
