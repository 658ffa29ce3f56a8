// Package validation runs request validation before any store mutation and
// reports every offending field at once.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names, the names API clients send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// objectid: 24-hex MongoDB ObjectID string
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	return v
}

// IsObjectID reports whether s parses as an ObjectID.
func IsObjectID(s string) bool {
	return primitive.IsValidObjectID(s)
}

// Checker is implemented by requests needing rules struct tags can't express.
type Checker interface {
	Check(r *Result)
}

// Result collects field errors. The zero value is a passing result.
type Result struct {
	Errors []apperrors.FieldError
}

// Add records a field error.
func (r *Result) Add(field, message string) {
	r.Errors = append(r.Errors, apperrors.FieldError{Field: field, Message: message})
}

// OK reports whether no field failed.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Err converts a failing result into an apperrors validation error.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return apperrors.NewValidationError(r.Errors)
}

// Validate checks v's `validate` tags and, when v implements Checker, its custom rules.
func Validate(v any) Result {
	var r Result
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				r.Add(fe.Field(), formatFieldError(fe))
			}
		} else {
			r.Add("", err.Error())
		}
	}
	if c, ok := v.(Checker); ok {
		c.Check(&r)
	}
	return r
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "objectid":
		return "must be a valid id"
	default:
		return "failed " + e.Tag() + " validation"
	}
}
