// AngelaMos | 2026
// repository.go

package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Repository interface {
	List(ctx context.Context, ownerID int64, params ListClientsParams) ([]Client, error)
	GetByID(ctx context.Context, ownerID, id int64) (*Client, error)
	Create(ctx context.Context, ownerID int64, c *Client) error
	Update(ctx context.Context, ownerID int64, c *Client) error
	Delete(ctx context.Context, ownerID, id int64) (*Client, error)
}

const columns = `
	id, company_id, name, name_urdu, ntn, strn, email, phone, address, city,
	contact_person, bank_name, bank_account_number, iban, balance,
	created_at, updated_at`

type scoped struct {
	Client
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
	params ListClientsParams,
) ([]Client, error) {
	params.Normalize()

	var f core.Filter
	f.Where(tenant.OwnedCompanies, ownerID)
	f.Search(params.Search, "name", "email", "phone")
	core.EqPtr(&f, "company_id", params.CompanyID)
	f.EqString("city", params.City)

	page, args := f.Page(params.ListParams)
	query := fmt.Sprintf(`
		SELECT %s
		FROM clients
		WHERE %s
		ORDER BY id ASC
		%s`, columns, f.Clause(), page)

	clients := []Client{}
	if err := r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}

func (r *repository) GetByID(ctx context.Context, ownerID, id int64) (*Client, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`SELECT %s FROM clients WHERE %s`, columns, f.Clause())

	var c Client
	if err := r.db.GetContext(ctx, &c, query, f.Args()...); err != nil {
		return nil, core.MapPGError("get client", err)
	}

	return &c, nil
}

// Create inserts only when the target company belongs to ownerID.
func (r *repository) Create(ctx context.Context, ownerID int64, c *Client) error {
	query := `
		INSERT INTO clients (
			company_id, name, name_urdu, ntn, strn, email, phone, address, city,
			contact_person, bank_name, bank_account_number, iban, balance
		)
		SELECT :company_id, :name, :name_urdu, :ntn, :strn, :email, :phone,
		       :address, :city, :contact_person, :bank_name,
		       :bank_account_number, :iban, :balance
		WHERE EXISTS (
			SELECT 1 FROM companies
			WHERE id = :company_id AND owner_id = :scope_owner_id
		)
		RETURNING ` + columns

	err := core.NamedGet(ctx, r.db, c, query, scoped{Client: *c, ScopeOwnerID: ownerID})
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("create client: %w", core.ErrForbidden)
	}
	if err != nil {
		return core.MapPGError("create client", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, ownerID int64, c *Client) error {
	query := `
		UPDATE clients SET
			name = :name, name_urdu = :name_urdu, ntn = :ntn, strn = :strn,
			email = :email, phone = :phone, address = :address, city = :city,
			contact_person = :contact_person, bank_name = :bank_name,
			bank_account_number = :bank_account_number, iban = :iban,
			balance = :balance, updated_at = NOW()
		WHERE id = :id
		  AND company_id IN (SELECT id FROM companies WHERE owner_id = :scope_owner_id)
		RETURNING ` + columns

	if err := core.NamedGet(ctx, r.db, c, query, scoped{Client: *c, ScopeOwnerID: ownerID}); err != nil {
		return core.MapPGError("update client", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, ownerID, id int64) (*Client, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`DELETE FROM clients WHERE %s RETURNING %s`, f.Clause(), columns)

	var c Client
	if err := r.db.GetContext(ctx, &c, query, f.Args()...); err != nil {
		return nil, core.MapPGError("delete client", err)
	}

	return &c, nil
}
