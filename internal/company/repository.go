// AngelaMos | 2026
// repository.go

package company

import (
	"context"
	"fmt"

	"github.com/aurex-pk/aurex-api/internal/core"
)

type Repository interface {
	List(ctx context.Context, ownerID int64, params ListCompaniesParams) ([]Company, error)
	GetByID(ctx context.Context, ownerID, id int64) (*Company, error)
	Create(ctx context.Context, c *Company) error
	Update(ctx context.Context, ownerID int64, c *Company) error
	Delete(ctx context.Context, ownerID, id int64) (*Company, error)
	Count(ctx context.Context) (int64, error)
}

const columns = `
	id, owner_id, name, name_urdu, ntn, strn, address, city, province,
	postal_code, country, phone, email, website, bank_name,
	bank_account_title, bank_account_number, iban, default_currency,
	created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	ownerID int64,
	params ListCompaniesParams,
) ([]Company, error) {
	params.Normalize()

	var f core.Filter
	f.Eq("owner_id", ownerID)
	f.Search(params.Search, "name", "ntn", "city")
	f.EqString("city", params.City)

	page, args := f.Page(params.ListParams)
	query := fmt.Sprintf(`
		SELECT %s
		FROM companies
		WHERE %s
		ORDER BY id ASC
		%s`, columns, f.Clause(), page)

	companies := []Company{}
	if err := r.db.SelectContext(ctx, &companies, query, args...); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	return companies, nil
}

func (r *repository) GetByID(ctx context.Context, ownerID, id int64) (*Company, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM companies
		WHERE id = $1 AND owner_id = $2`, columns)

	var c Company
	if err := r.db.GetContext(ctx, &c, query, id, ownerID); err != nil {
		return nil, core.MapPGError("get company", err)
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Company) error {
	query := `
		INSERT INTO companies (
			owner_id, name, name_urdu, ntn, strn, address, city, province,
			postal_code, country, phone, email, website, bank_name,
			bank_account_title, bank_account_number, iban, default_currency
		) VALUES (
			:owner_id, :name, :name_urdu, :ntn, :strn, :address, :city, :province,
			:postal_code, :country, :phone, :email, :website, :bank_name,
			:bank_account_title, :bank_account_number, :iban, :default_currency
		)
		RETURNING ` + columns

	if err := core.NamedGet(ctx, r.db, c, query, c); err != nil {
		return core.MapPGError("create company", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, ownerID int64, c *Company) error {
	query := `
		UPDATE companies SET
			name = :name, name_urdu = :name_urdu, ntn = :ntn, strn = :strn,
			address = :address, city = :city, province = :province,
			postal_code = :postal_code, country = :country, phone = :phone,
			email = :email, website = :website, bank_name = :bank_name,
			bank_account_title = :bank_account_title,
			bank_account_number = :bank_account_number, iban = :iban,
			default_currency = :default_currency, updated_at = NOW()
		WHERE id = :id AND owner_id = :scope_owner_id
		RETURNING ` + columns

	arg := struct {
		Company
		ScopeOwnerID int64 `db:"scope_owner_id"`
	}{Company: *c, ScopeOwnerID: ownerID}

	if err := core.NamedGet(ctx, r.db, c, query, arg); err != nil {
		return core.MapPGError("update company", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, ownerID, id int64) (*Company, error) {
	query := fmt.Sprintf(`
		DELETE FROM companies
		WHERE id = $1 AND owner_id = $2
		RETURNING %s`, columns)

	var c Company
	if err := r.db.GetContext(ctx, &c, query, id, ownerID); err != nil {
		return nil, core.MapPGError("delete company", err)
	}

	return &c, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM companies`); err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return n, nil
}
