package application

import (
	"errors"
	"fmt"
)

// Stable error codes carried in every structured error response.
const (
	CodeAuthRequired         = "AUTH_REQUIRED"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeScholarshipNotFound  = "SCHOLARSHIP_NOT_FOUND"
	CodeDuplicateApplication = "DUPLICATE_APPLICATION"
	CodeNotFound             = "NOT_FOUND"
	CodeTransient            = "TRANSIENT"
)

var (
	ErrNotFound             = errors.New("application not found")
	ErrNotAuthenticated     = errors.New("acting user not found")
	ErrScholarshipNotFound  = errors.New("scholarship not found")
	ErrPersonalInfoRequired = errors.New("personalInfo is required to create a student profile")
)

// DuplicateError carries the conflicting application's public id so the
// client can redirect to it instead of retrying.
type DuplicateError struct {
	ApplicationID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("application already exists: %s", e.ApplicationID)
}

// TransientError wraps storage/connectivity failures that are safe to retry.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "transient failure: " + e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }
