package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Messages returned to the visitor for each outcome
const (
	MsgContactSent    = "Thank you for reaching out! I'll get back to you soon."
	MsgContactInvalid = "Please correct the highlighted fields."
	MsgContactFailed  = "Sorry, your message could not be sent right now. Please try again later."
)

// ContactNotifier sends the notification email for a validated submission
type ContactNotifier interface {
	Notify(ctx context.Context, data email.ContactEmailData) error
	Recipient() string
}

type contactUsecase struct {
	notifier ContactNotifier
	validate *validator.Validate
	log      *slog.Logger
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(notifier ContactNotifier, validate *validator.Validate, log *slog.Logger) domain.ContactUsecase {
	return &contactUsecase{
		notifier: notifier,
		validate: validate,
		log:      log,
	}
}

// NormalizeContactForm turns absent or null fields into empty strings and trims
// name and email. message and projectType are passed through unmodified.
func NormalizeContactForm(form *domain.ContactForm) domain.ContactSubmission {
	if form == nil {
		return domain.ContactSubmission{}
	}
	return domain.ContactSubmission{
		Name:        strings.TrimSpace(deref(form.Name)),
		Email:       strings.TrimSpace(deref(form.Email)),
		ProjectType: deref(form.ProjectType),
		Message:     deref(form.Message),
	}
}

// ValidateContactForm normalizes the form and checks every rule, reporting all
// violations together as *validation.ValidationError.
func ValidateContactForm(v *validator.Validate, form *domain.ContactForm) (*domain.ContactSubmission, error) {
	submission := NormalizeContactForm(form)
	if err := validation.FromValidator(v.Struct(submission)); err != nil {
		return nil, err
	}
	return &submission, nil
}

// Submit validates the form and sends the notification email
func (uc *contactUsecase) Submit(ctx context.Context, form *domain.ContactForm) (*domain.ContactResult, error) {
	requestID := domain.RequestIDFrom(ctx)

	submission, err := ValidateContactForm(uc.validate, form)
	if err != nil {
		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			uc.log.Info("contact submission rejected",
				"request_id", requestID,
				"fields", fieldNames(ve.Fields),
			)
		}
		return nil, err
	}

	err = uc.notifier.Notify(ctx, email.ContactEmailData{
		Name:        submission.Name,
		Email:       submission.Email,
		ProjectType: submission.ProjectType,
		Message:     submission.Message,
	})
	if err != nil {
		// Submission content stays out of the log; only delivery diagnostics are kept.
		attrs := []any{
			"request_id", requestID,
			"recipient", uc.notifier.Recipient(),
			"error", err.Error(),
		}
		var de *email.DeliveryError
		if errors.As(err, &de) {
			attrs = append(attrs,
				"error_code", de.Code,
				"status_code", de.StatusCode,
				"provider_request_id", de.ProviderRequestID,
			)
		}
		uc.log.Error("contact email delivery failed", attrs...)
		return nil, err
	}

	uc.log.Info("contact submission delivered",
		"request_id", requestID,
		"recipient", uc.notifier.Recipient(),
		"project_type", submission.ProjectType,
	)

	return &domain.ContactResult{
		Success: true,
		Message: MsgContactSent,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fieldNames(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
