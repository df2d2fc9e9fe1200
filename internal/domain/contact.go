package domain

import "context"

// ContactForm is the raw contact form payload. Absent and null fields are both nil.
type ContactForm struct {
	Name        *string `json:"name" form:"name"`
	Email       *string `json:"email" form:"email"`
	ProjectType *string `json:"projectType" form:"projectType"`
	Message     *string `json:"message" form:"message"`
}

// ContactSubmission is a normalized contact form submission. It is never persisted.
type ContactSubmission struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message" validate:"min=10"`
}

// ContactResult is returned to the visitor when the message was delivered
type ContactResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates the form and sends the notification email.
	// Returns *validation.ValidationError or *email.DeliveryError on failure.
	Submit(ctx context.Context, form *ContactForm) (*ContactResult, error)
}
