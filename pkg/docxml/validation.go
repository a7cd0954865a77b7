package docxml

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator. Field names in reported issues
// use the yaml tag so they match what the user wrote.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		// wmlcolor accepts "auto" or six hex digits, the ST_HexColor forms
		_ = validate.RegisterValidation("wmlcolor", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "auto" {
				return true
			}
			if len(s) != 6 {
				return false
			}
			for _, r := range s {
				if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
					return false
				}
			}
			return true
		})
	})
	return validate
}

// validateStruct runs struct tag validation and converts failures into a ValidationError
func validateStruct(v interface{}) error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	issues := make([]ValidationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, ValidationIssue{
			Field:   trimNamespace(fe.Namespace()),
			Message: issueMessage(fe),
		})
	}
	return &ValidationError{Issues: issues}
}

// trimNamespace drops the root struct name: "RunDocument.runs[0].size" -> "runs[0].size"
func trimNamespace(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %v", fe.Param(), fe.Value())
	case "wmlcolor":
		return fmt.Sprintf("must be \"auto\" or six hex digits, got %v", fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	default:
		return fmt.Sprintf("failed '%s' check", fe.Tag())
	}
}
