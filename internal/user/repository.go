// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Repository interface {
	List(ctx context.Context, ownerID int64, params ListUsersParams) ([]User, error)
	GetByID(ctx context.Context, ownerID, id int64) (*User, error)
	Create(ctx context.Context, ownerID int64, u *User) error
	Update(ctx context.Context, ownerID int64, u *User) error
	Delete(ctx context.Context, ownerID, id int64) (*User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
}

const columns = `
	id, auth_id, email, name, password_hash, role, company_id,
	created_at, updated_at`

type scoped struct {
	User
	ScopeOwnerID int64 `db:"scope_owner_id"`
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	ownerID int64,
	params ListUsersParams,
) ([]User, error) {
	params.Normalize()

	var f core.Filter
	f.Where(tenant.OwnedCompanies, ownerID)
	f.Search(params.Search, "name", "email")
	core.EqPtr(&f, "company_id", params.CompanyID)
	f.EqString("role", params.Role)

	page, args := f.Page(params.ListParams)
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE %s
		ORDER BY id ASC
		%s`, columns, f.Clause(), page)

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) GetByID(ctx context.Context, ownerID, id int64) (*User, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s`, columns, f.Clause())

	var u User
	if err := r.db.GetContext(ctx, &u, query, f.Args()...); err != nil {
		return nil, core.MapPGError("get user", err)
	}

	return &u, nil
}

func (r *repository) Create(ctx context.Context, ownerID int64, u *User) error {
	query := `
		INSERT INTO users (email, name, password_hash, role, company_id)
		SELECT :email, :name, :password_hash, :role, :company_id
		WHERE EXISTS (
			SELECT 1 FROM companies
			WHERE id = :company_id AND owner_id = :scope_owner_id
		)
		RETURNING ` + columns

	err := core.NamedGet(ctx, r.db, u, query, scoped{User: *u, ScopeOwnerID: ownerID})
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("create user: %w", core.ErrForbidden)
	}
	if err != nil {
		return core.MapPGError("create user", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, ownerID int64, u *User) error {
	query := `
		UPDATE users SET
			email = :email, name = :name, password_hash = :password_hash,
			role = :role, updated_at = NOW()
		WHERE id = :id
		  AND company_id IN (SELECT id FROM companies WHERE owner_id = :scope_owner_id)
		RETURNING ` + columns

	if err := core.NamedGet(ctx, r.db, u, query, scoped{User: *u, ScopeOwnerID: ownerID}); err != nil {
		return core.MapPGError("update user", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, ownerID, id int64) (*User, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`DELETE FROM users WHERE %s RETURNING %s`, f.Clause(), columns)

	var u User
	if err := r.db.GetContext(ctx, &u, query, f.Args()...); err != nil {
		return nil, core.MapPGError("delete user", err)
	}

	return &u, nil
}

// ExistsByEmail checks the whole table; emails are unique across tenants
// regardless of case.
func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
	excludeID int64,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1) AND id <> $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email, excludeID); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}
