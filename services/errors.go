package services

import "errors"

var (
	// ErrInvalidCredentials never distinguishes an unknown email from a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// ErrNotFound covers both "absent" and "exists but not owned" for
	// owner-scoped resources.
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	ErrStorage = errors.New("storage unavailable")
)

// ValidationError carries a per-field message for 400 responses.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
