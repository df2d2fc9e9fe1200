package email

import (
	"errors"
	"fmt"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
)

var (
	// ErrDeliveryFailed is matched by every *DeliveryError.
	ErrDeliveryFailed = errors.New("email delivery failed")

	// ErrNotConfigured indicates the recipient or sender address is missing.
	ErrNotConfigured = errors.New("email notifier is not configured")
)

// DeliveryError reports that a notification could not be sent.
// Its fields are diagnostics for operator logs and must not be shown to visitors.
type DeliveryError struct {
	Code              string // Provider error code, e.g. "MessageRejected"
	StatusCode        int    // Provider HTTP status, 0 when no response was received
	ProviderRequestID string
	Err               error
}

func (e *DeliveryError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %v", ErrDeliveryFailed, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrDeliveryFailed, e.Err)
}

func (e *DeliveryError) Unwrap() []error {
	return []error{ErrDeliveryFailed, e.Err}
}

// newDeliveryError classifies a provider error. Errors that are already
// *DeliveryError are returned as they are.
func newDeliveryError(err error) *DeliveryError {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de
	}

	de = &DeliveryError{Err: err}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		de.Code = apiErr.ErrorCode()
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		de.StatusCode = respErr.HTTPStatusCode()
		de.ProviderRequestID = respErr.ServiceRequestID()
	}

	return de
}
