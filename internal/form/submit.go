package form

import (
	"context"
	"fmt"

	appDomain "scholarhub-backend/internal/domain/application"
)

// SubmitResult is what the server hands back on a successful submission.
type SubmitResult struct {
	ApplicationID string `json:"applicationId"`
	Message       string `json:"message"`
}

// Submitter sends the completed payload to the submission service.
type Submitter interface {
	Submit(ctx context.Context, p appDomain.Payload) (*SubmitResult, error)
}

// ServerError is any structured failure from the submission service. The
// wizard shows Message verbatim and keeps the draft.
type ServerError struct {
	Code    string
	Message string
	// Set when Code is DUPLICATE_APPLICATION so the UI can link to the
	// existing application.
	ExistingApplicationID string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected submission [%s]: %s", e.Code, e.Message)
}

// IsDuplicate reports whether the server said this (student, scholarship)
// pair already has an application.
func (e *ServerError) IsDuplicate() bool {
	return e.Code == appDomain.CodeDuplicateApplication
}
