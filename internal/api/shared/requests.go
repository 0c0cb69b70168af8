package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance. Field names in validation errors use the
// struct's JSON tags so responses speak the wire format, not Go.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct using the shared validator.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// FieldError is one entry in a validation error response. Loc locates the
// offending value ("body" or "path" followed by the field name).
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// BodyFieldError builds a FieldError for a body field.
func BodyFieldError(field, msg string) FieldError {
	return FieldError{Loc: []string{"body", field}, Msg: msg}
}

// PathFieldError builds a FieldError for a path parameter.
func PathFieldError(param, msg string) FieldError {
	return FieldError{Loc: []string{"path", param}, Msg: msg}
}

// ValidationDetails converts a validator error into wire-format field
// errors. Non-validator errors collapse into a single body-level entry.
func ValidationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Loc: []string{"body"}, Msg: "invalid request body"}}
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, BodyFieldError(fe.Field(), fieldErrorMessage(fe)))
	}
	return details
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}
