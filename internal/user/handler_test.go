// AngelaMos | 2026
// handler_test.go

package user

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
	"github.com/aurex-pk/aurex-api/internal/middleware"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

// memRepo: user 1 owns company 10, user 2 owns company 20.
type memRepo struct {
	rows   []User
	nextID int64
}

var owners = map[int64]int64{10: 1, 20: 2}

func newMemRepo() *memRepo {
	ten, twenty := int64(10), int64(20)
	a, b := "owner@acme.pk", "boss@other.pk"
	return &memRepo{
		nextID: 2,
		rows: []User{
			{ID: 1, Email: &a, Name: "Owner", Role: RoleOwner, CompanyID: &ten},
			{ID: 2, Email: &b, Name: "Boss", Role: RoleOwner, CompanyID: &twenty},
		},
	}
}

func (m *memRepo) visible(ownerID int64, u User) bool {
	return u.CompanyID != nil && owners[*u.CompanyID] == ownerID
}

func (m *memRepo) List(_ context.Context, ownerID int64, p ListUsersParams) ([]User, error) {
	out := []User{}
	for _, u := range m.rows {
		if !m.visible(ownerID, u) {
			continue
		}
		if p.Role != "" && u.Role != p.Role {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *memRepo) find(ownerID, id int64) (int, bool) {
	for i, u := range m.rows {
		if u.ID == id && m.visible(ownerID, u) {
			return i, true
		}
	}
	return 0, false
}

func (m *memRepo) GetByID(_ context.Context, ownerID, id int64) (*User, error) {
	i, ok := m.find(ownerID, id)
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	u := m.rows[i]
	return &u, nil
}

func (m *memRepo) Create(_ context.Context, ownerID int64, u *User) error {
	if owners[*u.CompanyID] != ownerID {
		return fmt.Errorf("create user: %w", core.ErrForbidden)
	}
	m.nextID++
	u.ID = m.nextID
	m.rows = append(m.rows, *u)
	return nil
}

func (m *memRepo) Update(_ context.Context, ownerID int64, u *User) error {
	i, ok := m.find(ownerID, u.ID)
	if !ok {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	m.rows[i] = *u
	return nil
}

func (m *memRepo) Delete(_ context.Context, ownerID, id int64) (*User, error) {
	i, ok := m.find(ownerID, id)
	if !ok {
		return nil, fmt.Errorf("delete user: %w", core.ErrNotFound)
	}
	u := m.rows[i]
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return &u, nil
}

func (m *memRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range m.rows {
		if u.Email != nil && strings.EqualFold(*u.Email, email) && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func newRouter(repo Repository, scope tenant.Scope) chi.Router {
	svc := NewService(repo)
	svc.hash = func(p string) (string, error) { return "hashed:" + p, nil }

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := tenant.WithScope(req.Context(), scope)
			ctx = middleware.WithUserRole(ctx, scope.Role)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	NewHandler(svc).RegisterRoutes(r)
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

var owner = tenant.Scope{UserID: 1, CompanyID: 10, Role: RoleOwner}

func TestCreateUserHidesCredential(t *testing.T) {
	repo := newMemRepo()
	r := newRouter(repo, owner)

	rec := serve(r, http.MethodPost, "/users",
		`{"email":" Ali@Acme.pk ","name":"Ali","password":"s3cretpass","role":"accountant"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.NotContains(t, rec.Body.String(), "s3cretpass")

	var u map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "Ali@Acme.pk", u["email"])
	assert.EqualValues(t, 10, u["companyId"])

	stored := repo.rows[len(repo.rows)-1]
	require.NotNil(t, stored.PasswordHash)
	assert.Equal(t, "hashed:s3cretpass", *stored.PasswordHash)

	rec = serve(r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hashed:")

	rec = serve(r, http.MethodGet, "/users?id=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hashed:")
}

func TestCreateUserValidation(t *testing.T) {
	r := newRouter(newMemRepo(), owner)

	cases := []struct {
		body string
		code string
	}{
		{`{"name":"Ali","password":"s3cretpass","role":"staff"}`, "MISSING_EMAIL"},
		{`{"email":"ali@acme","name":"Ali","password":"s3cretpass","role":"staff"}`, "INVALID_EMAIL"},
		{`{"email":"ali@acme.pk","password":"s3cretpass","role":"staff"}`, "MISSING_NAME"},
		{`{"email":"ali@acme.pk","name":"Ali","role":"staff"}`, "MISSING_PASSWORD"},
		{`{"email":"ali@acme.pk","name":"Ali","password":"short","role":"staff"}`, "INVALID_PASSWORD"},
		{`{"email":"ali@acme.pk","name":"Ali","password":"s3cretpass","role":"admin"}`, "INVALID_ROLE"},
		{`{"email":"owner@acme.pk","name":"Ali","password":"s3cretpass","role":"staff"}`, "EMAIL_EXISTS"},
		{`{"email":"OWNER@Acme.PK","name":"Ali","password":"s3cretpass","role":"staff"}`, "EMAIL_EXISTS"},
	}

	for _, tc := range cases {
		rec := serve(r, http.MethodPost, "/users", tc.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.body)
		assert.Equal(t, tc.code, errCode(t, rec), tc.body)
	}

	rec := serve(r, http.MethodPost, "/users",
		`{"companyId":20,"email":"x@acme.pk","name":"X","password":"s3cretpass","role":"staff"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	repo := newMemRepo()
	r := newRouter(repo, owner)
	serve(r, http.MethodPost, "/users",
		`{"email":"ali@acme.pk","name":"Ali","password":"s3cretpass","role":"staff"}`)

	rec := serve(r, http.MethodPut, "/users?id=3", `{"email":"boss@other.pk"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMAIL_EXISTS", errCode(t, rec))

	rec = serve(r, http.MethodPut, "/users?id=3", `{"email":"ali@acme.pk","role":"accountant"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var u User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, RoleAccountant, u.Role)
	assert.Equal(t, "Ali", u.Name)

	rec = serve(r, http.MethodPut, "/users?id=3", `{"email":"Boss@Other.PK"}`)
	assert.Equal(t, "EMAIL_EXISTS", errCode(t, rec))

	rec = serve(r, http.MethodPut, "/users?id=3", `{"email":"Ali.Khan@Acme.pk"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "Ali.Khan@Acme.pk", *u.Email)

	assert.Equal(t, "MISSING_NAME", errCode(t, serve(r, http.MethodPut, "/users?id=3", `{"name":"  "}`)))
	assert.Equal(t, "MISSING_EMAIL", errCode(t, serve(r, http.MethodPut, "/users?id=3", `{"email":" "}`)))
	assert.Equal(t, "Ali", repo.rows[2].Name)

	rec = serve(r, http.MethodPut, "/users?id=2", `{"name":"Hijack"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", errCode(t, rec))
}

func TestUserRolesAndSelf(t *testing.T) {
	repo := newMemRepo()
	r := newRouter(repo, owner)

	rec := serve(r, http.MethodGet, "/users/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var me User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, int64(1), me.ID)

	rec = serve(r, http.MethodDelete, "/users?id=1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CANNOT_DELETE_SELF", errCode(t, rec))

	staff := newRouter(repo, tenant.Scope{UserID: 1, CompanyID: 10, Role: RoleStaff})
	rec = serve(staff, http.MethodPost, "/users",
		`{"email":"x@acme.pk","name":"X","password":"s3cretpass","role":"staff"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(staff, http.MethodGet, "/users?role=owner", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
}
