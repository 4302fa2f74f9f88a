package http

import (
	"github.com/go-playground/validator/v10"

	appDomain "scholarhub-backend/internal/domain/application"
)

// Reusable error payload
type ErrorResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Error   string                 `json:"error"`
	Details []appDomain.FieldError `json:"details,omitempty"`
}

// CustomValidator plugs the shared payload rules (inphone/aadhar/pan/
// pincode/ifsc) into echo's c.Validate.
type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	return &CustomValidator{v: appDomain.NewValidate()}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }
