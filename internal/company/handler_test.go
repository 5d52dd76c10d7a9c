// AngelaMos | 2026
// handler_test.go

package company

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type memRepo struct {
	mu         sync.Mutex
	rows       map[int64]Company
	nextID     int64
	dependents map[int64]bool
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[int64]Company{}, dependents: map[int64]bool{}}
}

func (m *memRepo) owned(ownerID, id int64) (Company, bool) {
	c, ok := m.rows[id]
	if !ok || c.OwnerID == nil || *c.OwnerID != ownerID {
		return Company{}, false
	}
	return c, true
}

func (m *memRepo) List(_ context.Context, ownerID int64, params ListCompaniesParams) ([]Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	params.Normalize()

	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []Company{}
	for _, id := range ids {
		c, ok := m.owned(ownerID, id)
		if !ok || (params.Search != "" && !strings.Contains(c.Name, params.Search)) {
			continue
		}
		out = append(out, c)
	}

	if params.Offset >= len(out) {
		return []Company{}, nil
	}
	out = out[params.Offset:]
	if len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (m *memRepo) GetByID(_ context.Context, ownerID, id int64) (*Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.owned(ownerID, id)
	if !ok {
		return nil, fmt.Errorf("get company: %w", core.ErrNotFound)
	}
	return &c, nil
}

func (m *memRepo) Create(_ context.Context, c *Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.rows[c.ID] = *c
	return nil
}

func (m *memRepo) Update(_ context.Context, ownerID int64, c *Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.owned(ownerID, c.ID); !ok {
		return fmt.Errorf("update company: %w", core.ErrNotFound)
	}
	c.UpdatedAt = time.Now()
	m.rows[c.ID] = *c
	return nil
}

func (m *memRepo) Delete(_ context.Context, ownerID, id int64) (*Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.owned(ownerID, id)
	if !ok {
		return nil, fmt.Errorf("delete company: %w", core.ErrNotFound)
	}
	if m.dependents[id] {
		return nil, fmt.Errorf("delete company: %w", core.ErrForeignKey)
	}
	delete(m.rows, id)
	return &c, nil
}

func (m *memRepo) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), nil
}

type fixture struct {
	repo   *memRepo
	router chi.Router
	scope  tenant.Scope
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{repo: newMemRepo(), scope: tenant.Scope{UserID: 1, CompanyID: 1, Role: "owner"}}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(tenant.WithScope(req.Context(), f.scope)))
		})
	})
	NewHandler(NewService(f.repo)).RegisterRoutes(r)
	f.router = r
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCreateCompanyDefaults(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/companies", `{"name":"  Acme  ","city":" Lahore "}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	c := decode[Company](t, rec)
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, "PKR", c.DefaultCurrency)
	require.NotNil(t, c.City)
	assert.Equal(t, "Lahore", *c.City)
	assert.Nil(t, c.NTN)
	require.NotNil(t, c.OwnerID)
	assert.Equal(t, int64(1), *c.OwnerID)

	got := f.do(t, http.MethodGet, fmt.Sprintf("/companies?id=%d", c.ID), "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, c.Name, decode[Company](t, got).Name)
}

func TestCreateCompanyValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "missing name", body: `{}`, code: "MISSING_NAME"},
		{name: "blank name", body: `{"name":"   "}`, code: "MISSING_NAME"},
		{name: "bad email", body: `{"name":"Acme","email":"foo@bar"}`, code: "INVALID_EMAIL"},
		{name: "bad json", body: `{"name":`, code: "INVALID_BODY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/companies", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decode[core.ErrorResponse](t, rec).Code)
		})
	}

	rec := f.do(t, http.MethodPost, "/companies", `{"name":"Acme","email":"foo@bar.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetCompanyErrors(t *testing.T) {
	f := newFixture(t)

	for _, q := range []string{"abc", "0", "-1", ""} {
		rec := f.do(t, http.MethodGet, "/companies?id="+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.Equal(t, "INVALID_ID", decode[core.ErrorResponse](t, rec).Code)
	}

	rec := f.do(t, http.MethodGet, "/companies?id=999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "COMPANY_NOT_FOUND", decode[core.ErrorResponse](t, rec).Code)
}

func TestCompanyTenantIsolation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/companies", `{"name":"Acme"}`)
	c := decode[Company](t, rec)

	f.scope = tenant.Scope{UserID: 2, CompanyID: 50}
	got := f.do(t, http.MethodGet, fmt.Sprintf("/companies?id=%d", c.ID), "")
	assert.Equal(t, http.StatusNotFound, got.Code)

	list := f.do(t, http.MethodGet, "/companies", "")
	assert.Equal(t, "[]\n", list.Body.String())
}

func TestUpdateCompanyPartial(t *testing.T) {
	f := newFixture(t)
	c := decode[Company](t, f.do(t, http.MethodPost, "/companies", `{"name":"Acme","phone":"042-111"}`))

	rec := f.do(t, http.MethodPut, fmt.Sprintf("/companies?id=%d", c.ID), `{"city":"Karachi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[Company](t, rec)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "042-111", *updated.Phone)
	assert.Equal(t, "Karachi", *updated.City)

	rec = f.do(t, http.MethodPut, fmt.Sprintf("/companies?id=%d", c.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	same := decode[Company](t, rec)
	assert.Equal(t, updated.Name, same.Name)
	assert.Equal(t, updated.City, same.City)

	for _, body := range []string{`{"name":""}`, `{"name":"  "}`} {
		rec = f.do(t, http.MethodPut, fmt.Sprintf("/companies?id=%d", c.ID), body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "MISSING_NAME", decode[core.ErrorResponse](t, rec).Code, body)
	}

	rec = f.do(t, http.MethodPut, "/companies?id=77", `{"city":"Quetta"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCompany(t *testing.T) {
	f := newFixture(t)
	c := decode[Company](t, f.do(t, http.MethodPost, "/companies", `{"name":"Acme"}`))

	f.repo.dependents[c.ID] = true
	rec := f.do(t, http.MethodDelete, fmt.Sprintf("/companies?id=%d", c.ID), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "COMPANY_HAS_DEPENDENTS", decode[core.ErrorResponse](t, rec).Code)

	f.repo.dependents[c.ID] = false
	rec = f.do(t, http.MethodDelete, fmt.Sprintf("/companies?id=%d", c.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.EqualValues(t, c.ID, body["id"])
	assert.Contains(t, body, "company")

	rec = f.do(t, http.MethodDelete, fmt.Sprintf("/companies?id=%d", c.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCompaniesPagination(t *testing.T) {
	f := newFixture(t)
	for i := 1; i <= 10; i++ {
		f.do(t, http.MethodPost, "/companies", fmt.Sprintf(`{"name":"Co %02d"}`, i))
	}

	page := decode[[]Company](t, f.do(t, http.MethodGet, "/companies?limit=5&offset=5", ""))
	require.Len(t, page, 5)
	assert.Equal(t, "Co 06", page[0].Name)
	assert.Equal(t, "Co 10", page[4].Name)

	all := decode[[]Company](t, f.do(t, http.MethodGet, "/companies?limit=200", ""))
	assert.Len(t, all, 10)

	found := decode[[]Company](t, f.do(t, http.MethodGet, "/companies?search=Co%2003", ""))
	require.Len(t, found, 1)
}
