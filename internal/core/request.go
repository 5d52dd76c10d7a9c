// AngelaMos | 2026
// request.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParseID reads the ?id= query parameter. Anything that is not a positive
// integer is rejected with INVALID_ID.
func ParseID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, InvalidIDError()
	}
	return id, nil
}

// HasID reports whether the request targets a single row.
func HasID(r *http.Request) bool {
	return r.URL.Query().Has("id")
}

// DecodeJSON decodes the request body into dst. An empty body decodes to the
// zero value so that an empty PUT is a no-op update.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var amountErr *AmountError
	if errors.As(err, &amountErr) {
		return InvalidAmountError(amountErr.Raw)
	}

	var dateErr *DateError
	if errors.As(err, &dateErr) {
		return BadRequestError(
			"INVALID_DATE",
			fmt.Sprintf("date must be YYYY-MM-DD, got %q", dateErr.Raw),
		)
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return NewAppError(
			ErrInvalidInput,
			"request body too large",
			http.StatusRequestEntityTooLarge,
			"BODY_TOO_LARGE",
		)
	}

	return BadRequestError("INVALID_BODY", "invalid request body")
}

// ListParams is the pagination/search window shared by every list endpoint.
type ListParams struct {
	Limit  int
	Offset int
	Search string
}

func (p *ListParams) Normalize() {
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

func ParseListParams(r *http.Request) ListParams {
	q := r.URL.Query()
	params := ListParams{
		Limit:  parseIntQuery(r, "limit", DefaultLimit),
		Offset: parseIntQuery(r, "offset", 0),
		Search: q.Get("search"),
	}
	params.Normalize()
	return params
}

// QueryInt64 returns an optional positive integer filter. Malformed values
// are reported so the caller can answer 400 instead of silently ignoring them.
func QueryInt64(r *http.Request, key string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, BadRequestError(
			"INVALID_"+CodeFor(key),
			key+" must be a positive integer",
		)
	}
	return &v, nil
}

func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
