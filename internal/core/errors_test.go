// AngelaMos | 2026
// errors_test.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeFor(t *testing.T) {
	assert.Equal(t, "TAX_INVOICE", CodeFor("tax invoice"))
	assert.Equal(t, "TAX_INVOICE", CodeFor("taxInvoice"))
	assert.Equal(t, "COMPANY_ID", CodeFor("companyId"))
	assert.Equal(t, "INVOICE_NUMBER", CodeFor("invoiceNumber"))
	assert.Equal(t, "BANK_TRANSACTION", CodeFor("bank-transaction"))
	assert.Equal(t, "EMAIL", CodeFor("email"))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJSONErrorRendersAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "tax invoice")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "TAX_INVOICE_NOT_FOUND", body.Code)
	assert.Equal(t, "Tax invoice not found", body.Error)
}

func TestJSONErrorWrapsUnknownAs500(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Contains(t, body.Error, "connection refused")
}

func TestJSONErrorFindsWrappedAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, fmt.Errorf("create user: %w", DuplicateError("email")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMAIL_EXISTS", decodeError(t, rec).Code)
}

func TestMapPGError(t *testing.T) {
	err := MapPGError("create user", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	err = MapPGError("delete company", &pgconn.PgError{Code: "23503"})
	assert.ErrorIs(t, err, ErrForeignKey)

	other := errors.New("boom")
	err = MapPGError("list", other)
	assert.ErrorIs(t, err, other)

	assert.NoError(t, MapPGError("noop", nil))
}

func TestRespondErrorMapsSentinels(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("get client: %w", ErrNotFound), http.StatusNotFound, "CLIENT_NOT_FOUND"},
		{fmt.Errorf("company 3: %w", ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{MapPGError("create invoice", &pgconn.PgError{Code: "23503"}), http.StatusBadRequest, "INVALID_REFERENCE"},
	}

	for _, tc := range tests {
		rec := httptest.NewRecorder()
		RespondError(rec, tc.err, "client")
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
		assert.Equal(t, tc.code, decodeError(t, rec).Code)
	}
}

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "aurex:tier:idp|1", (&Redis{Prefix: "aurex"}).Key("tier", "idp|1"))
	assert.Equal(t, "tier:idp|1", (&Redis{}).Key("tier", "idp|1"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotContains(t, hash, "s3cret-pass")
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"), hash)
	assert.Len(t, strings.Split(hash, "$"), 6)

	again, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}
