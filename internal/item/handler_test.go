// AngelaMos | 2026
// handler_test.go

package item

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

type memRepo struct {
	rows []Item
}

func (m *memRepo) List(_ context.Context, _ int64, p ListItemsParams) ([]Item, error) {
	out := []Item{}
	for _, it := range m.rows {
		if p.IsService != nil && it.IsService != *p.IsService {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (m *memRepo) GetByID(_ context.Context, _, id int64) (*Item, error) {
	for _, it := range m.rows {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, fmt.Errorf("get item: %w", core.ErrNotFound)
}

func (m *memRepo) Create(_ context.Context, _ int64, it *Item) error {
	it.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *it)
	return nil
}

func (m *memRepo) Update(_ context.Context, _ int64, it *Item) error {
	m.rows[it.ID-1] = *it
	return nil
}

func (m *memRepo) Delete(ctx context.Context, ownerID, id int64) (*Item, error) {
	return m.GetByID(ctx, ownerID, id)
}

func router(repo Repository) chi.Router {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := tenant.WithScope(req.Context(), tenant.Scope{UserID: 1, CompanyID: 3})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	NewHandler(NewService(repo)).RegisterRoutes(r)
	return r
}

func call(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestCreateItem(t *testing.T) {
	repo := &memRepo{}
	r := router(repo)

	rec := call(r, http.MethodPost, "/items", `{"name":"Consulting","unitPrice":"1500.00","taxRate":17,"isService":true,"sku":" SRV-1 "}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var it Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &it))
	assert.Equal(t, int64(3), it.CompanyID)
	assert.Equal(t, "1500", it.UnitPrice.String())
	assert.Equal(t, "17", it.TaxRate.String())
	assert.True(t, it.IsService)
	assert.Equal(t, "SRV-1", *it.SKU)
}

func TestItemValidation(t *testing.T) {
	r := router(&memRepo{})

	cases := map[string]string{
		`{"name":"Widget","unitPrice":-1}`:    "INVALID_UNIT_PRICE",
		`{"name":"Widget","unitPrice":"abc"}`: "INVALID_AMOUNT",
		`{"unitPrice":5}`:                     "MISSING_NAME",
	}
	for body, code := range cases {
		rec := call(r, http.MethodPost, "/items", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		var e core.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
		assert.Equal(t, code, e.Code, body)
	}
}

func TestItemListFilter(t *testing.T) {
	r := router(&memRepo{})
	call(r, http.MethodPost, "/items", `{"name":"Widget","unitPrice":10}`)
	call(r, http.MethodPost, "/items", `{"name":"Support","unitPrice":10,"isService":true}`)

	var rows []Item
	rec := call(r, http.MethodGet, "/items?isService=true", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Support", rows[0].Name)

	rec = call(r, http.MethodGet, "/items?isService=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateItemKeepsAbsentFields(t *testing.T) {
	r := router(&memRepo{})
	call(r, http.MethodPost, "/items", `{"name":"Widget","unitPrice":10,"unit":"pcs"}`)

	rec := call(r, http.MethodPut, "/items?id=1", `{"unitPrice":12.5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var it Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &it))
	assert.Equal(t, "Widget", it.Name)
	assert.Equal(t, "pcs", *it.Unit)
	assert.Equal(t, "12.5", it.UnitPrice.String())

	for _, body := range []string{`{"name":""}`, `{"name":" \t "}`} {
		rec = call(r, http.MethodPut, "/items?id=1", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		var e core.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
		assert.Equal(t, "MISSING_NAME", e.Code, body)
	}
	rec = call(r, http.MethodGet, "/items?id=1", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &it))
	assert.Equal(t, "Widget", it.Name)

	rec = call(r, http.MethodPut, "/items?id=9", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
