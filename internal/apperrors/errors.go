// Package apperrors defines the error taxonomy shared by services and HTTP handlers.
// Handlers translate these errors into status codes; services never see HTTP.
package apperrors

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("user with that email already exists")

	// ErrInvalidCredentials is returned for any failed login attempt.
	// Unknown email and wrong password produce this same error so the
	// response never reveals which part was wrong.
	ErrInvalidCredentials = errors.New("wrong credentials provided")

	// ErrUnauthorized is returned when a request carries no token,
	// a malformed token, or an expired one.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrCertificateNotFound is returned when a transfer targets a
	// certificate that does not exist or is not owned by the requester.
	ErrCertificateNotFound = errors.New("carbon certificate not found")
)

// ValidationError reports one or more field-level validation failures.
type ValidationError struct {
	// Messages holds one human-readable message per failed constraint.
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return e.Messages[0]
}

// NewValidation constructs a ValidationError from the given messages.
func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
