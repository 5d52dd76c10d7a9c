// AngelaMos | 2026
// validation.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern requires local@domain.tld; "foo@bar" is rejected.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	//nolint:errcheck // tag name is static and valid
	_ = v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})

	return v
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidationError turns the first failing field into a coded 400. required,
// or an empty string failing min, maps to MISSING_<FIELD>. emailaddr maps to
// INVALID_EMAIL and anything else to INVALID_<FIELD>.
func ValidationError(err error) *AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return BadRequestError("VALIDATION_ERROR", err.Error())
	}

	fe := verrs[0]
	field := fe.Field()

	switch {
	case isMissing(fe):
		return BadRequestError(
			"MISSING_"+CodeFor(field),
			fmt.Sprintf("%s is required", field),
		)
	case fe.Tag() == "emailaddr":
		return BadRequestError(
			"INVALID_EMAIL",
			fmt.Sprintf("%s must be a valid email address", field),
		)
	case fe.Tag() == "oneof":
		return BadRequestError(
			"INVALID_"+CodeFor(field),
			fmt.Sprintf("%s must be one of: %s", field, fe.Param()),
		)
	default:
		return BadRequestError(
			"INVALID_"+CodeFor(field),
			FormatValidationError(err),
		)
	}
}

// isMissing treats an empty string that fails a length rule like an absent
// required field, so a present "" on update reads as MISSING_<FIELD>.
func isMissing(fe validator.FieldError) bool {
	switch fe.Tag() {
	case "required", "required_without", "required_if":
		return true
	case "min":
		v := reflect.ValueOf(fe.Value())
		for v.Kind() == reflect.Pointer && !v.IsNil() {
			v = v.Elem()
		}
		return v.Kind() == reflect.String && v.Len() == 0
	}
	return false
}

// FormatValidationError renders every failing field as one message.
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "emailaddr":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}

	return strings.Join(msgs, "; ")
}

// TrimPtr trims an optional text field in place.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// NullIfEmpty maps an optional, already trimmed value to a nullable column.
func NullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// TrimAll trims every optional text field in place.
func TrimAll(fields ...**string) {
	for _, f := range fields {
		*f = TrimPtr(*f)
	}
}

// SetOpt copies a present optional value onto a nullable column. A present
// empty string clears the column.
func SetOpt(dst **string, src *string) {
	if src != nil {
		*dst = NullIfEmpty(src)
	}
}

type Normalizer interface {
	Normalize()
}

// Bind decodes, normalizes and validates a request body into dst.
func Bind(r *http.Request, v *validator.Validate, dst any) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}

	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}

	if err := v.Struct(dst); err != nil {
		return ValidationError(err)
	}

	return nil
}
