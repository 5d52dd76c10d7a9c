// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrForeignKey    = errors.New("foreign key violation")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
)

// AppError is an error that knows how it should be rendered over HTTP.
// Code is the stable value callers branch on.
type AppError struct {
	Err        error
	Message    string
	StatusCode int
	Code       string
}

func NewAppError(err error, message string, statusCode int, code string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: statusCode,
		Code:       code,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func BadRequestError(code, message string) *AppError {
	return NewAppError(ErrInvalidInput, message, http.StatusBadRequest, code)
}

func InvalidIDError() *AppError {
	return BadRequestError("INVALID_ID", "id must be a positive integer")
}

func InvalidAmountError(raw string) *AppError {
	return NewAppError(
		ErrInvalidAmount,
		fmt.Sprintf("amount must be numeric, got %q", raw),
		http.StatusBadRequest,
		"INVALID_AMOUNT",
	)
}

// NotFoundError builds the entity-specific 404, e.g. "tax invoice" becomes
// TAX_INVOICE_NOT_FOUND.
func NotFoundError(resource string) *AppError {
	return NewAppError(
		ErrNotFound,
		capitalize(resource)+" not found",
		http.StatusNotFound,
		CodeFor(resource)+"_NOT_FOUND",
	)
}

// DuplicateError reports a unique-key conflict. Conflicts surface as 400.
func DuplicateError(field string) *AppError {
	return NewAppError(
		ErrDuplicateKey,
		fmt.Sprintf("%s already exists", field),
		http.StatusBadRequest,
		CodeFor(field)+"_EXISTS",
	)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
	)
}

func ForbiddenError(message string) *AppError {
	if message == "" {
		message = "access denied"
	}
	return NewAppError(ErrForbidden, message, http.StatusForbidden, "FORBIDDEN")
}

func TokenExpiredError() *AppError {
	return NewAppError(
		ErrTokenExpired,
		"token has expired",
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
	)
}

func TokenInvalidError() *AppError {
	return NewAppError(
		ErrTokenInvalid,
		"invalid token",
		http.StatusUnauthorized,
		"TOKEN_INVALID",
	)
}

func InternalError(err error) *AppError {
	return NewAppError(
		err,
		fmt.Sprintf("Internal server error: %v", err),
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
	)
}

// CodeFor upper-snakes a resource or field name: "taxInvoice",
// "tax invoice" and "tax_invoice" all become TAX_INVOICE.
func CodeFor(name string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range name {
		switch {
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
			prevLower = false
		case r >= 'A' && r <= 'Z':
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			prevLower = false
		default:
			b.WriteString(strings.ToUpper(string(r)))
			prevLower = r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
		}
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
