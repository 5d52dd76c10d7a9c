// AngelaMos | 2026
// repository.go

package tenant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aurex-pk/aurex-api/internal/core"
)

type ProvisionInput struct {
	AuthID          string
	Email           string
	Name            string
	CompanyName     string
	DefaultCurrency string
}

type Repository interface {
	FindByAuthID(ctx context.Context, authID string) (*Scope, error)
	Provision(ctx context.Context, in ProvisionInput) (*Scope, bool, error)
}

type repository struct {
	db core.TxRunner
}

func NewRepository(db core.TxRunner) Repository {
	return &repository{db: db}
}

type scopeRow struct {
	ID        int64         `db:"id"`
	CompanyID sql.NullInt64 `db:"company_id"`
	Role      string        `db:"role"`
}

func (row scopeRow) scope() *Scope {
	return &Scope{
		UserID:    row.ID,
		CompanyID: row.CompanyID.Int64,
		Role:      row.Role,
	}
}

func (r *repository) FindByAuthID(ctx context.Context, authID string) (*Scope, error) {
	query := `
		SELECT id, company_id, role
		FROM users
		WHERE auth_id = $1`

	var row scopeRow
	if err := r.db.GetContext(ctx, &row, query, authID); err != nil {
		return nil, core.MapPGError("find user by auth id", err)
	}

	if !row.CompanyID.Valid {
		return nil, fmt.Errorf("find user by auth id: unlinked: %w", core.ErrNotFound)
	}

	return row.scope(), nil
}

// Provision materializes the user for an identity and links it to a freshly
// created company when it has none. The insert is conditional on the unique
// auth_id and the user row is locked before linking, so concurrent first
// requests converge on one user and one company.
func (r *repository) Provision(ctx context.Context, in ProvisionInput) (*Scope, bool, error) {
	var (
		out     *Scope
		created bool
	)

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		insertUser := `
			INSERT INTO users (auth_id, email, name, role)
			SELECT $1,
			       CASE
			           WHEN $2::text = '' THEN NULL
			           WHEN EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($2::text)) THEN NULL
			           ELSE $2::text
			       END,
			       $3,
			       'owner'
			ON CONFLICT (auth_id) DO NOTHING`

		if _, err := tx.ExecContext(ctx, insertUser, in.AuthID, in.Email, in.Name); err != nil {
			return core.MapPGError("insert user", err)
		}

		lockUser := `
			SELECT id, company_id, role
			FROM users
			WHERE auth_id = $1
			FOR UPDATE`

		var row scopeRow
		if err := tx.GetContext(ctx, &row, lockUser, in.AuthID); err != nil {
			return core.MapPGError("lock user", err)
		}

		if row.CompanyID.Valid {
			out = row.scope()
			return nil
		}

		insertCompany := `
			INSERT INTO companies (owner_id, name, default_currency)
			VALUES ($1, $2, $3)
			RETURNING id`

		var companyID int64
		if err := tx.GetContext(
			ctx, &companyID, insertCompany,
			row.ID, in.CompanyName, in.DefaultCurrency,
		); err != nil {
			return core.MapPGError("create default company", err)
		}

		linkUser := `
			UPDATE users
			SET company_id = $1, updated_at = NOW()
			WHERE id = $2`

		if _, err := tx.ExecContext(ctx, linkUser, companyID, row.ID); err != nil {
			return core.MapPGError("link user", err)
		}

		row.CompanyID = sql.NullInt64{Int64: companyID, Valid: true}
		out = row.scope()
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return out, created, nil
}
