// AngelaMos | 2026
// repository.go

package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/document"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Repository interface {
	List(ctx context.Context, ownerID int64, kind Kind, params ListInvoicesParams) ([]Invoice, error)
	GetByID(ctx context.Context, ownerID int64, kind Kind, id int64) (*Invoice, error)
	Create(ctx context.Context, ownerID int64, inv *Invoice) error
	Update(ctx context.Context, ownerID int64, inv *Invoice, replaceLines bool) error
	Delete(ctx context.Context, ownerID int64, kind Kind, id int64) (*Invoice, error)
	CheckParties(ctx context.Context, ownerID int64, parties document.Parties) error
}

const columns = `
	id, kind, company_id, client_id, invoice_number, issue_date, due_date,
	status, subtotal, tax_amount, discount_amount, total, amount_paid,
	currency, notes, terms, created_by, created_at, updated_at`

const insertQuery = `
	INSERT INTO invoices (
		kind, company_id, client_id, invoice_number, issue_date, due_date,
		status, subtotal, tax_amount, discount_amount, total, amount_paid,
		currency, notes, terms, created_by
	)
	SELECT :kind, :company_id, :client_id, :invoice_number, :issue_date,
	       :due_date, :status, :subtotal, :tax_amount, :discount_amount,
	       :total, :amount_paid, :currency, :notes, :terms, :created_by
	WHERE EXISTS (
		SELECT 1 FROM companies
		WHERE id = :company_id AND owner_id = :scope_owner_id
	)
	RETURNING ` + columns

type scoped struct {
	Invoice
	ScopeOwnerID int64 `db:"scope_owner_id"`
}

type repository struct {
	db core.TxRunner
}

func NewRepository(db core.TxRunner) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	ownerID int64,
	kind Kind,
	params ListInvoicesParams,
) ([]Invoice, error) {
	params.Normalize()

	var f core.Filter
	f.Where(tenant.OwnedCompanies, ownerID)
	f.Eq("kind", string(kind))
	f.Search(params.Search, "invoice_number", "notes")
	core.EqPtr(&f, "company_id", params.CompanyID)
	core.EqPtr(&f, "client_id", params.ClientID)
	f.EqString("status", params.Status)

	page, args := f.Page(params.ListParams)
	query := fmt.Sprintf(`
		SELECT %s
		FROM invoices
		WHERE %s
		ORDER BY created_at DESC, id DESC
		%s`, columns, f.Clause(), page)

	invoices := []Invoice{}
	if err := r.db.SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, nil
}

func (r *repository) GetByID(ctx context.Context, ownerID int64, kind Kind, id int64) (*Invoice, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Eq("kind", string(kind))
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE %s`, columns, f.Clause())

	var inv Invoice
	if err := r.db.GetContext(ctx, &inv, query, f.Args()...); err != nil {
		return nil, core.MapPGError("get invoice", err)
	}

	lines, err := document.InvoiceLines.Load(ctx, r.db, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines

	return &inv, nil
}

// Create writes the header and its lines in one transaction. The insert
// yields no row when the company is not owned by ownerID.
func (r *repository) Create(ctx context.Context, ownerID int64, inv *Invoice) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return Insert(ctx, tx, ownerID, inv)
	})
}

// Insert is Create on a caller-owned transaction.
func Insert(ctx context.Context, tx core.DBTX, ownerID int64, inv *Invoice) error {
	lines := inv.Lines

	err := core.NamedGet(ctx, tx, inv, insertQuery, scoped{Invoice: *inv, ScopeOwnerID: ownerID})
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("create invoice: %w", core.ErrForbidden)
	}
	if err != nil {
		return core.MapPGError("create invoice", err)
	}

	inv.Lines, err = document.InvoiceLines.Insert(ctx, tx, inv.ID, lines)
	return err
}

func (r *repository) Update(ctx context.Context, ownerID int64, inv *Invoice, replaceLines bool) error {
	query := `
		UPDATE invoices SET
			client_id = :client_id, invoice_number = :invoice_number,
			issue_date = :issue_date, due_date = :due_date, status = :status,
			subtotal = :subtotal, tax_amount = :tax_amount,
			discount_amount = :discount_amount, total = :total,
			amount_paid = :amount_paid, currency = :currency, notes = :notes,
			terms = :terms, updated_at = NOW()
		WHERE id = :id AND kind = :kind
		  AND company_id IN (SELECT id FROM companies WHERE owner_id = :scope_owner_id)
		RETURNING ` + columns

	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		lines := inv.Lines

		if err := core.NamedGet(ctx, tx, inv, query, scoped{Invoice: *inv, ScopeOwnerID: ownerID}); err != nil {
			return core.MapPGError("update invoice", err)
		}

		var err error
		if replaceLines {
			inv.Lines, err = document.InvoiceLines.Replace(ctx, tx, inv.ID, lines)
		} else {
			inv.Lines, err = document.InvoiceLines.Load(ctx, tx, inv.ID)
		}
		return err
	})
}

func (r *repository) Delete(ctx context.Context, ownerID int64, kind Kind, id int64) (*Invoice, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Eq("kind", string(kind))
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`DELETE FROM invoices WHERE %s RETURNING %s`, f.Clause(), columns)

	var inv Invoice
	if err := r.db.GetContext(ctx, &inv, query, f.Args()...); err != nil {
		return nil, core.MapPGError("delete invoice", err)
	}

	return &inv, nil
}

func (r *repository) CheckParties(ctx context.Context, ownerID int64, parties document.Parties) error {
	return document.CheckParties(ctx, r.db, ownerID, parties)
}
