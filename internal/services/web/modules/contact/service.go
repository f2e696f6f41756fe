package contact

import (
	"context"
	"errors"

	contactform "github.com/rkprasad/portfolio/internal/services/web/contact"
	apperrors "github.com/rkprasad/portfolio/internal/services/web/platform/errors"
)

type service struct {
	submitter *contactform.Submitter
	limiter   *contactform.Limiter
}

func newService(submitter *contactform.Submitter, limiter *contactform.Limiter) service {
	if submitter == nil {
		submitter = contactform.NewSubmitter(-1, nil, nil)
	}
	return service{submitter: submitter, limiter: limiter}
}

// submit validates form and runs the simulated submission for clientIP.
// Field errors come back without an error; rate limiting and delivery
// failures come back as typed errors.
func (s service) submit(ctx context.Context, form contactform.Form, clientIP string) (contactform.Errors, error) {
	if errs := contactform.Validate(form); !errs.Valid() {
		return errs, nil
	}
	if !s.limiter.Allow(clientIP) {
		return nil, apperrors.EK(apperrors.KindRateLimited, "contact.error.rate", "contact submissions rate limited")
	}
	if err := s.submitter.Submit(ctx, form, clientIP); err != nil {
		if errors.Is(err, contactform.ErrInvalid) {
			return contactform.Validate(form), nil
		}
		return nil, apperrors.Wrap(apperrors.KindUnavailable, "contact.error.message", err)
	}
	return nil, nil
}
