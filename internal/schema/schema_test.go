// AngelaMos | 2026
// schema_test.go

package schema

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurex-pk/aurex-api/internal/core"
)

type lineInput struct {
	Quantity *core.Amount `json:"quantity"`
}

type Extras struct {
	Notes *string `json:"notes"`
}

type createThing struct {
	CompanyID *int64       `json:"companyId"`
	Name      string       `json:"name"      validate:"required"`
	Email     *string      `json:"email"     validate:"omitempty,emailaddr"`
	Status    string       `json:"status"    validate:"omitempty,oneof=draft sent"`
	Password  string       `json:"password"  validate:"required,min=8"`
	IssueDate *core.Date   `json:"issueDate"`
	Total     *core.Amount `json:"total"`
	Lines     []lineInput  `json:"lines"`
	Secret    string       `json:"-"`
	Extras
}

func TestGenerate(t *testing.T) {
	s := Generate(createThing{})

	assert.ElementsMatch(t, []string{"name", "password"}, s.Required)

	status, ok := s.Properties.Get("status")
	require.True(t, ok)
	assert.Equal(t, []any{"draft", "sent"}, status.Enum)

	email, ok := s.Properties.Get("email")
	require.True(t, ok)
	assert.Equal(t, "email", email.Format)

	password, ok := s.Properties.Get("password")
	require.True(t, ok)
	require.NotNil(t, password.MinLength)
	assert.EqualValues(t, 8, *password.MinLength)

	date, ok := s.Properties.Get("issueDate")
	require.True(t, ok)
	assert.Equal(t, "date", date.Format)

	total, ok := s.Properties.Get("total")
	require.True(t, ok)
	assert.Len(t, total.OneOf, 2)

	_, ok = s.Properties.Get("notes")
	assert.True(t, ok)
	_, ok = s.Properties.Get("Secret")
	assert.False(t, ok)
}

func TestHandler(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(map[string]any{"things": createThing{}}).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema/things", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "things", body["title"])
	assert.Equal(t, "object", body["type"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema/widgets", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errBody core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "SCHEMA_NOT_FOUND", errBody.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema", nil))
	assert.JSONEq(t, `{"resources":["things"]}`, rec.Body.String())
}
