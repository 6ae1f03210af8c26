package application

import "errors"

var (
	// ErrUnauthorized is returned when a mutation is attempted without an
	// active admin session.
	ErrUnauthorized = errors.New("application: unauthorized")
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrInvalidCredentials is returned when a member or admin password does
	// not match. The session is left unchanged.
	ErrInvalidCredentials = errors.New("application: invalid credentials")
	// ErrInvalidBackup is returned when an uploaded document cannot be parsed
	// or is missing the version/timestamp metadata. No state is changed.
	ErrInvalidBackup = errors.New("application: invalid backup document")
	// ErrConfirmationRequired is returned by destructive operations invoked
	// without an explicit confirmation. The caller re-issues the call with
	// Confirm set after prompting the user; not doing so is a normal abort.
	ErrConfirmationRequired = errors.New("application: confirmation required")
)

// ValidationError captures field level validation issues that callers can
// surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
