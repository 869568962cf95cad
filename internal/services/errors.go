package services

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"bottleshop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = repositories.ErrNotFound
	// ErrMissingFields is returned when a required input field is empty.
	ErrMissingFields = errors.New("missing fields")
	// ErrInvalidCredentials is returned on an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when signing up with an email that is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError carries per-field validation failures keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// newValidator returns a validator that reports fields by their JSON name.
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

// validateStruct runs v on s and converts failures into a *ValidationError.
func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return &ValidationError{Fields: fields}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
