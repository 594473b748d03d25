package apperror

import (
	"errors"

	"github.com/MKhiriev/go-cyr-records/internal/adapter"
	"github.com/MKhiriev/go-cyr-records/models"
)

// NormalizedError is the uniform failure shape shown to users.
type NormalizedError struct {
	// Status is the HTTP status reported by the store, 0 when absent.
	Status int
	// Message is always non-empty.
	Message string
	// FieldErrors holds per-field validation messages, nil when absent.
	FieldErrors models.FieldErrorMap
	// Cause is the original failure, kept for logging.
	Cause error
}

func (e *NormalizedError) Error() string {
	return e.Message
}

// Unwrap exposes both the failure kind and the original cause. Locally
// rejected arguments keep only their cause.
func (e *NormalizedError) Unwrap() []error {
	switch {
	case e.HasStatus():
		return e.withCause(ErrRemoteRejected)
	case errors.Is(e.Cause, ErrInvalidArgument):
		return []error{e.Cause}
	default:
		return e.withCause(ErrTransportFailure)
	}
}

func (e *NormalizedError) withCause(kind error) []error {
	if e.Cause == nil {
		return []error{kind}
	}
	return []error{kind, e.Cause}
}

// HasStatus reports whether the store answered with a status code.
func (e *NormalizedError) HasStatus() bool {
	return e.Status != 0
}

// FieldMessage returns the message of the named field error, if any.
func (e *NormalizedError) FieldMessage(field string) (string, bool) {
	fe, ok := e.FieldErrors[field]
	if !ok {
		return "", false
	}
	return fe.Message, true
}

// Normalize converts any failure into a [*NormalizedError].
//
// The message is taken from the store's response body first, then from the
// failure itself, then falls back to [UnknownErrorMessage]. Status and field
// errors are only filled for store responses. A nil err produces a value
// with the fallback message and no cause. Errors that are already
// normalized are returned unchanged.
func Normalize(err error) *NormalizedError {
	if err == nil {
		return &NormalizedError{Message: UnknownErrorMessage}
	}

	var normalized *NormalizedError
	if errors.As(err, &normalized) && normalized != nil {
		return normalized
	}

	result := &NormalizedError{Cause: err}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) && respErr != nil {
		result.Status = respErr.Status
		result.FieldErrors = respErr.FieldErrors()
		result.Message = respErr.Response.Message
	}

	if result.Message == "" {
		result.Message = safeMessage(err)
	}
	if result.Message == "" {
		result.Message = UnknownErrorMessage
	}

	return result
}

// safeMessage returns err.Error(), or "" when the implementation panics
// (e.g. a typed nil pointer inside an interface).
func safeMessage(err error) (msg string) {
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()
	return err.Error()
}
