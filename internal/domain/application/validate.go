package application

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Format rules shared by the wizard and the server boundary.
var (
	// 10 digits, first digit 6-9
	rePhone = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	// exactly 12 digits
	reAadhar = regexp.MustCompile(`^[0-9]{12}$`)
	// 5 letters + 4 digits + 1 letter, uppercase
	rePAN = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	// exactly 6 digits
	rePinCode = regexp.MustCompile(`^[0-9]{6}$`)
	// 4 letters + literal 0 + 6 alphanumerics
	reIFSC = regexp.MustCompile(`^[A-Z]{4}0[A-Za-z0-9]{6}$`)
)

// NewValidate returns a validator with every custom payload tag registered
// and field names reported by their json tag.
func NewValidate() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return rePhone.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("aadhar", func(fl validator.FieldLevel) bool {
		return reAadhar.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return rePAN.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return rePinCode.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ifsc", func(fl validator.FieldLevel) bool {
		return reIFSC.MatchString(fl.Field().String())
	})

	return v
}

// FieldError is one validation failure on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field failures for a payload section.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ToFieldErrors maps validator.ValidationErrors to readable field messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "inphone":
			out = append(out, FieldError{Field: field, Message: "must be 10 digits starting with 6-9"})
		case "aadhar":
			out = append(out, FieldError{Field: field, Message: "must be exactly 12 digits"})
		case "pan":
			out = append(out, FieldError{Field: field, Message: "must match AAAAA9999A"})
		case "pincode":
			out = append(out, FieldError{Field: field, Message: "must be exactly 6 digits"})
		case "ifsc":
			out = append(out, FieldError{Field: field, Message: "must match AAAA0XXXXXX"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a date formatted " + e.Param()})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of " + e.Param()})
		case "numeric":
			out = append(out, FieldError{Field: field, Message: "must contain only digits"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "url":
			out = append(out, FieldError{Field: field, Message: "must be a valid URL"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
