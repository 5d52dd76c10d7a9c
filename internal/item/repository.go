// AngelaMos | 2026
// repository.go

package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Repository interface {
	List(ctx context.Context, ownerID int64, params ListItemsParams) ([]Item, error)
	GetByID(ctx context.Context, ownerID, id int64) (*Item, error)
	Create(ctx context.Context, ownerID int64, it *Item) error
	Update(ctx context.Context, ownerID int64, it *Item) error
	Delete(ctx context.Context, ownerID, id int64) (*Item, error)
}

const columns = `
	id, company_id, name, name_urdu, description, unit_price, unit,
	tax_rate, is_service, sku, created_at, updated_at`

type scoped struct {
	Item
	ScopeOwnerID int64 `db:"scope_owner_id"`
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, ownerID int64, params ListItemsParams) ([]Item, error) {
	params.Normalize()

	var f core.Filter
	f.Where(tenant.OwnedCompanies, ownerID)
	f.Search(params.Search, "name", "sku", "description")
	core.EqPtr(&f, "company_id", params.CompanyID)
	core.EqPtr(&f, "is_service", params.IsService)

	page, args := f.Page(params.ListParams)
	query := fmt.Sprintf(`
		SELECT %s
		FROM items
		WHERE %s
		ORDER BY id ASC
		%s`, columns, f.Clause(), page)

	items := []Item{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

func (r *repository) GetByID(ctx context.Context, ownerID, id int64) (*Item, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	var it Item
	query := fmt.Sprintf(`SELECT %s FROM items WHERE %s`, columns, f.Clause())
	if err := r.db.GetContext(ctx, &it, query, f.Args()...); err != nil {
		return nil, core.MapPGError("get item", err)
	}

	return &it, nil
}

func (r *repository) Create(ctx context.Context, ownerID int64, it *Item) error {
	query := `
		INSERT INTO items (
			company_id, name, name_urdu, description, unit_price, unit,
			tax_rate, is_service, sku
		)
		SELECT :company_id, :name, :name_urdu, :description, :unit_price,
		       :unit, :tax_rate, :is_service, :sku
		WHERE EXISTS (
			SELECT 1 FROM companies
			WHERE id = :company_id AND owner_id = :scope_owner_id
		)
		RETURNING ` + columns

	err := core.NamedGet(ctx, r.db, it, query, scoped{Item: *it, ScopeOwnerID: ownerID})
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("create item: %w", core.ErrForbidden)
	}
	if err != nil {
		return core.MapPGError("create item", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, ownerID int64, it *Item) error {
	query := `
		UPDATE items SET
			name = :name, name_urdu = :name_urdu, description = :description,
			unit_price = :unit_price, unit = :unit, tax_rate = :tax_rate,
			is_service = :is_service, sku = :sku, updated_at = NOW()
		WHERE id = :id
		  AND company_id IN (SELECT id FROM companies WHERE owner_id = :scope_owner_id)
		RETURNING ` + columns

	if err := core.NamedGet(ctx, r.db, it, query, scoped{Item: *it, ScopeOwnerID: ownerID}); err != nil {
		return core.MapPGError("update item", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, ownerID, id int64) (*Item, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	var it Item
	query := fmt.Sprintf(`DELETE FROM items WHERE %s RETURNING %s`, f.Clause(), columns)
	if err := r.db.GetContext(ctx, &it, query, f.Args()...); err != nil {
		return nil, core.MapPGError("delete item", err)
	}

	return &it, nil
}
