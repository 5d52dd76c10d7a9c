// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// JSONError renders err. Errors that are not AppErrors become a 500 that
// carries the raw error text.
func JSONError(w http.ResponseWriter, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "code", appErr.Code)
	}

	JSON(w, appErr.StatusCode, ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code,
	})
}

func BadRequest(w http.ResponseWriter, code, message string) {
	JSONError(w, BadRequestError(code, message))
}

func NotFound(w http.ResponseWriter, resource string) {
	JSONError(w, NotFoundError(resource))
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSONError(w, UnauthorizedError(message))
}

func Forbidden(w http.ResponseWriter, message string) {
	JSONError(w, ForbiddenError(message))
}

func InternalServerError(w http.ResponseWriter, err error) {
	JSONError(w, InternalError(err))
}

// Deleted writes the delete confirmation: {message, id, <key>: row}.
func Deleted(w http.ResponseWriter, resource, key string, id int64, row any) {
	body := map[string]any{
		"message": capitalize(resource) + " deleted successfully",
		"id":      id,
	}
	if row != nil && key != "" {
		body[key] = row
	}
	OK(w, body)
}

// RespondError renders a service error for resource. Missing rows become
// <RESOURCE>_NOT_FOUND, ownership failures a 403 and dangling references a
// 400; anything else that is not an AppError is a 500.
func RespondError(w http.ResponseWriter, err error, resource string) {
	if IsAppError(err) {
		JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		NotFound(w, resource)
	case errors.Is(err, ErrForbidden):
		Forbidden(w, "company does not belong to the caller")
	case errors.Is(err, ErrForeignKey):
		BadRequest(w, "INVALID_REFERENCE", "request references a row that does not exist")
	default:
		InternalServerError(w, err)
	}
}
