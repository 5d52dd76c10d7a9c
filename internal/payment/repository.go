// AngelaMos | 2026
// repository.go

package payment

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Repository interface {
	List(ctx context.Context, ownerID int64, params ListPaymentsParams) ([]Payment, error)
	GetByID(ctx context.Context, ownerID, id int64) (*Payment, error)
	Create(ctx context.Context, ownerID int64, p *Payment) error
	Update(ctx context.Context, ownerID int64, p *Payment) error
	Delete(ctx context.Context, ownerID, id int64) (*Payment, error)
	InvoiceCompany(ctx context.Context, ownerID, invoiceID int64) (int64, error)
}

const columns = `
	id, company_id, invoice_id, amount, payment_date, method, reference,
	notes, created_at, updated_at`

type repository struct {
	db core.TxRunner
}

func NewRepository(db core.TxRunner) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, ownerID int64, params ListPaymentsParams) ([]Payment, error) {
	params.Normalize()

	var f core.Filter
	f.Where(tenant.OwnedCompanies, ownerID)
	f.Search(params.Search, "reference", "notes")
	core.EqPtr(&f, "company_id", params.CompanyID)
	core.EqPtr(&f, "invoice_id", params.InvoiceID)
	f.EqString("method", params.Method)

	page, args := f.Page(params.ListParams)
	query := fmt.Sprintf(`
		SELECT %s
		FROM payments
		WHERE %s
		ORDER BY created_at DESC, id DESC
		%s`, columns, f.Clause(), page)

	payments := []Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}

func (r *repository) GetByID(ctx context.Context, ownerID, id int64) (*Payment, error) {
	return get(ctx, r.db, ownerID, id, "")
}

func get(ctx context.Context, db core.DBTX, ownerID, id int64, suffix string) (*Payment, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`SELECT %s FROM payments WHERE %s %s`, columns, f.Clause(), suffix)

	var p Payment
	if err := db.GetContext(ctx, &p, query, f.Args()...); err != nil {
		return nil, core.MapPGError("get payment", err)
	}

	return &p, nil
}

// InvoiceCompany returns the company of an invoice visible to ownerID.
func (r *repository) InvoiceCompany(ctx context.Context, ownerID, invoiceID int64) (int64, error) {
	var f core.Filter
	f.Eq("id", invoiceID)
	f.Where(tenant.OwnedCompanies, ownerID)

	var companyID int64
	query := fmt.Sprintf(`SELECT company_id FROM invoices WHERE %s`, f.Clause())
	if err := r.db.GetContext(ctx, &companyID, query, f.Args()...); err != nil {
		return 0, core.MapPGError("get payment invoice", err)
	}

	return companyID, nil
}

func adjustPaid(ctx context.Context, tx core.DBTX, invoiceID int64, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	query := `
		UPDATE invoices
		SET amount_paid = amount_paid + $1, updated_at = NOW()
		WHERE id = $2`
	if _, err := tx.ExecContext(ctx, query, delta, invoiceID); err != nil {
		return fmt.Errorf("adjust invoice %d amount paid: %w", invoiceID, err)
	}
	return nil
}

// Create inserts the payment and adds it to the invoice's amount_paid.
func (r *repository) Create(ctx context.Context, ownerID int64, p *Payment) error {
	query := `
		INSERT INTO payments (
			company_id, invoice_id, amount, payment_date, method, reference, notes
		)
		SELECT i.company_id, i.id, :amount, :payment_date, :method, :reference, :notes
		FROM invoices i
		WHERE i.id = :invoice_id
		  AND i.company_id IN (SELECT id FROM companies WHERE owner_id = :scope_owner_id)
		RETURNING ` + columns

	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := core.NamedGet(ctx, tx, p, query, struct {
			Payment
			ScopeOwnerID int64 `db:"scope_owner_id"`
		}{*p, ownerID})
		if err != nil {
			return core.MapPGError("create payment", err)
		}

		return adjustPaid(ctx, tx, p.InvoiceID, p.Amount)
	})
}

// Update rewrites the payment and moves the invoice's amount_paid by the
// change in amount.
func (r *repository) Update(ctx context.Context, ownerID int64, p *Payment) error {
	query := `
		UPDATE payments SET
			amount = :amount, payment_date = :payment_date, method = :method,
			reference = :reference, notes = :notes, updated_at = NOW()
		WHERE id = :id
		RETURNING ` + columns

	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		prev, err := get(ctx, tx, ownerID, p.ID, "FOR UPDATE")
		if err != nil {
			return err
		}

		if err := core.NamedGet(ctx, tx, p, query, p); err != nil {
			return core.MapPGError("update payment", err)
		}

		return adjustPaid(ctx, tx, p.InvoiceID, p.Amount.Sub(prev.Amount))
	})
}

func (r *repository) Delete(ctx context.Context, ownerID, id int64) (*Payment, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`DELETE FROM payments WHERE %s RETURNING %s`, f.Clause(), columns)

	var p Payment
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &p, query, f.Args()...); err != nil {
			return core.MapPGError("delete payment", err)
		}
		return adjustPaid(ctx, tx, p.InvoiceID, p.Amount.Neg())
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}
