// AngelaMos | 2026
// handler_test.go

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

// memRepo models two tenants: user 1 owns companies 10 and 11, user 2 owns 20.
type memRepo struct {
	rows   []Client
	nextID int64
}

var owners = map[int64]int64{10: 1, 11: 1, 20: 2}

func (m *memRepo) List(_ context.Context, ownerID int64, p ListClientsParams) ([]Client, error) {
	p.Normalize()
	out := []Client{}
	for _, c := range m.rows {
		if owners[c.CompanyID] != ownerID {
			continue
		}
		if p.CompanyID != nil && c.CompanyID != *p.CompanyID {
			continue
		}
		if p.Search != "" && !strings.Contains(c.Name, p.Search) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *memRepo) find(ownerID, id int64) (int, bool) {
	for i, c := range m.rows {
		if c.ID == id && owners[c.CompanyID] == ownerID {
			return i, true
		}
	}
	return 0, false
}

func (m *memRepo) GetByID(_ context.Context, ownerID, id int64) (*Client, error) {
	i, ok := m.find(ownerID, id)
	if !ok {
		return nil, fmt.Errorf("get client: %w", core.ErrNotFound)
	}
	c := m.rows[i]
	return &c, nil
}

func (m *memRepo) Create(_ context.Context, ownerID int64, c *Client) error {
	if owners[c.CompanyID] != ownerID {
		return fmt.Errorf("create client: %w", core.ErrForbidden)
	}
	m.nextID++
	c.ID = m.nextID
	m.rows = append(m.rows, *c)
	return nil
}

func (m *memRepo) Update(_ context.Context, ownerID int64, c *Client) error {
	i, ok := m.find(ownerID, c.ID)
	if !ok {
		return fmt.Errorf("update client: %w", core.ErrNotFound)
	}
	m.rows[i] = *c
	return nil
}

func (m *memRepo) Delete(_ context.Context, ownerID, id int64) (*Client, error) {
	i, ok := m.find(ownerID, id)
	if !ok {
		return nil, fmt.Errorf("delete client: %w", core.ErrNotFound)
	}
	c := m.rows[i]
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return &c, nil
}

func newRouter(repo Repository, scope tenant.Scope) chi.Router {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(tenant.WithScope(req.Context(), scope)))
		})
	})
	NewHandler(NewService(repo)).RegisterRoutes(r)
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestCreateClient(t *testing.T) {
	repo := &memRepo{}
	r := newRouter(repo, tenant.Scope{UserID: 1, CompanyID: 10})

	rec := serve(r, http.MethodPost, "/clients", `{"companyId":11,"name":"Bob"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var c map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.EqualValues(t, 11, c["companyId"])
	assert.Equal(t, "Bob", c["name"])
	assert.EqualValues(t, 0, c["balance"])

	rec = serve(r, http.MethodPost, "/clients", `{"name":"Linked","balance":"250.50"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.EqualValues(t, 10, c["companyId"])
	assert.EqualValues(t, 250.5, c["balance"])
}

func TestCreateClientRejections(t *testing.T) {
	r := newRouter(&memRepo{}, tenant.Scope{UserID: 1, CompanyID: 10})

	rec := serve(r, http.MethodPost, "/clients", `{"companyId":20,"name":"Bob"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errCode(t, rec))

	rec = serve(r, http.MethodPost, "/clients", `{"name":"Bob","email":"bob@acme"}`)
	assert.Equal(t, "INVALID_EMAIL", errCode(t, rec))

	rec = serve(r, http.MethodPost, "/clients", `{"name":"Bob","balance":"lots"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_AMOUNT", errCode(t, rec))

	rec = serve(r, http.MethodPost, "/clients", `{"email":"bob@acme.pk"}`)
	assert.Equal(t, "MISSING_NAME", errCode(t, rec))
}

func TestClientListFiltersAndIsolation(t *testing.T) {
	repo := &memRepo{}
	owner := newRouter(repo, tenant.Scope{UserID: 1, CompanyID: 10})
	serve(owner, http.MethodPost, "/clients", `{"name":"Alpha"}`)
	serve(owner, http.MethodPost, "/clients", `{"companyId":11,"name":"Beta"}`)

	other := newRouter(repo, tenant.Scope{UserID: 2, CompanyID: 20})
	serve(other, http.MethodPost, "/clients", `{"name":"Gamma"}`)

	var rows []Client
	rec := serve(owner, http.MethodGet, "/clients?companyId=11", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Beta", rows[0].Name)

	rec = serve(owner, http.MethodGet, "/clients?companyId=x", "")
	assert.Equal(t, "INVALID_COMPANY_ID", errCode(t, rec))

	rec = serve(other, http.MethodGet, "/clients?id=1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CLIENT_NOT_FOUND", errCode(t, rec))
}

func TestUpdateAndDeleteClient(t *testing.T) {
	r := newRouter(&memRepo{}, tenant.Scope{UserID: 1, CompanyID: 10})
	serve(r, http.MethodPost, "/clients", `{"name":"Bob","phone":"0300"}`)

	rec := serve(r, http.MethodPut, "/clients?id=1", `{"balance":12,"phone":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var c Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Bob", c.Name)
	assert.Nil(t, c.Phone)
	assert.Equal(t, "12", c.Balance.String())

	for _, body := range []string{`{"name":""}`, `{"name":"   "}`} {
		rec = serve(r, http.MethodPut, "/clients?id=1", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "MISSING_NAME", errCode(t, rec), body)
	}
	rec = serve(r, http.MethodGet, "/clients?id=1", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Bob", c.Name)

	rec = serve(r, http.MethodDelete, "/clients?id=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "Client deleted successfully", body["message"])
}
