package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	appDomain "scholarhub-backend/internal/domain/application"
)

// writeDomainError maps the submission error taxonomy onto HTTP. The 409 for
// duplicates carries the conflicting application id so the client can
// redirect instead of retrying; 503 marks errors the client may retry with
// its draft intact.
func writeDomainError(c echo.Context, err error) error {
	var dup *appDomain.DuplicateError
	if errors.As(err, &dup) {
		resp := ErrorResponse{
			Message: "you have already applied for this scholarship",
			Error:   appDomain.CodeDuplicateApplication,
		}
		if dup.ApplicationID != "" {
			resp.Details = []appDomain.FieldError{{Field: "applicationId", Message: dup.ApplicationID}}
		}
		return c.JSON(http.StatusConflict, resp)
	}

	var ve *appDomain.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Error:   appDomain.CodeValidationFailed,
			Details: ve.Fields,
		})
	}

	var tr *appDomain.TransientError
	switch {
	case errors.Is(err, appDomain.ErrNotAuthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "not authenticated",
			Error:   appDomain.CodeAuthRequired,
		})
	case errors.Is(err, appDomain.ErrScholarshipNotFound):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "scholarship not found",
			Error:   appDomain.CodeScholarshipNotFound,
		})
	case errors.Is(err, appDomain.ErrPersonalInfoRequired):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "personalInfo is required for a first application",
			Error:   appDomain.CodeValidationFailed,
			Details: []appDomain.FieldError{{Field: "personalInfo", Message: "is required"}},
		})
	case errors.Is(err, appDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "application not found",
			Error:   appDomain.CodeNotFound,
		})
	case errors.As(err, &tr):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Message: "temporary storage failure, please retry",
			Error:   appDomain.CodeTransient,
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "internal error",
		Error:   "INTERNAL",
	})
}
