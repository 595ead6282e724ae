package http

import (
	"errors"
	"reflect"
	"strings"

	domainFeedback "greentracker-backend/internal/domain/feedback"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	StatusCode int          `json:"statusCode"`
	Error      string       `json:"error"`
	Details    []FieldError `json:"details,omitempty"`
}

// ValidationError is returned by bind when the payload fails its validate tags.
type ValidationError struct{ Details []FieldError }

func (e *ValidationError) Error() string { return "validation failed" }

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json / form / query names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	// category names travel in URL paths
	_ = v.RegisterValidation("nopathsep", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "/?#")
	})
	_ = v.RegisterValidation("feedback", func(fl validator.FieldLevel) bool {
		return domainFeedback.Value(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := fieldPath(e.Namespace())
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "nopathsep":
			out = append(out, FieldError{Field: field, Message: "must not contain '/', '?' or '#'"})
		case "feedback":
			out = append(out, FieldError{Field: field, Message: "must be one of " + feedbackValues()})
		case "url":
			out = append(out, FieldError{Field: field, Message: "must be a valid URL"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "gtfield":
			out = append(out, FieldError{Field: field, Message: "must be after " + lowerFirst(e.Param())})
		case "min":
			out = append(out, FieldError{Field: field, Message: minMessage(e)})
		case "max":
			out = append(out, FieldError{Field: field, Message: maxMessage(e)})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

// fieldPath drops the root struct name: "Input.criteria[0]" -> "criteria[0]".
func fieldPath(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return rest
}

func minMessage(e validator.FieldError) string {
	if e.Kind() == reflect.String {
		return "must be at least " + e.Param() + " characters"
	}
	return "must be at least " + e.Param()
}

func maxMessage(e validator.FieldError) string {
	if e.Kind() == reflect.String {
		return "must be at most " + e.Param() + " characters"
	}
	return "must be at most " + e.Param()
}

func feedbackValues() string {
	names := make([]string, 0, len(domainFeedback.Values))
	for _, v := range domainFeedback.Values {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
