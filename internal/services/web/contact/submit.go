package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rkprasad/portfolio/internal/services/web/storage"
)

// DefaultSubmitDelay is the simulated network latency of a submission.
const DefaultSubmitDelay = 2 * time.Second

// ErrInvalid is returned when a form fails validation.
var ErrInvalid = errors.New("contact form is invalid")

// Submitter performs the simulated submission. No message leaves the host: it
// is logged and, when an inbox is configured, recorded locally.
type Submitter struct {
	Delay  time.Duration
	Inbox  storage.Inbox
	Logger *log.Logger

	now func() time.Time
}

// NewSubmitter returns a submitter. A negative delay selects
// DefaultSubmitDelay; zero disables the wait.
func NewSubmitter(delay time.Duration, inbox storage.Inbox, logger *log.Logger) *Submitter {
	if delay < 0 {
		delay = DefaultSubmitDelay
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Submitter{Delay: delay, Inbox: inbox, Logger: logger, now: time.Now}
}

// Submit validates form, waits the configured delay and records it. Context
// cancellation aborts the wait with ctx.Err().
func (s *Submitter) Submit(ctx context.Context, form Form, clientIP string) error {
	if errs := Validate(form); !errs.Valid() {
		return ErrInvalid
	}
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	now := time.Now
	if s.now != nil {
		now = s.now
	}
	message := storage.ContactMessage{
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
		Budget:    form.Budget,
		Timeline:  form.Timeline,
		ClientIP:  clientIP,
		CreatedAt: now().UTC(),
	}
	if s.Inbox != nil {
		if err := s.Inbox.RecordContactMessage(ctx, message); err != nil {
			s.Logger.Printf("contact submit failed email=%s err=%v", form.Email, err)
			return fmt.Errorf("record contact message: %w", err)
		}
	}
	s.Logger.Printf("contact message received email=%s subject=%q budget=%s timeline=%s", form.Email, form.Subject, form.Budget, form.Timeline)
	return nil
}
