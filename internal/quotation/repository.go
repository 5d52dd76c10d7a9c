// AngelaMos | 2026
// repository.go

package quotation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/document"
	"github.com/aurex-pk/aurex-api/internal/invoice"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

// InvoiceBuilder maps a locked quotation to the invoice it becomes. An error
// aborts the conversion.
type InvoiceBuilder func(q *Quotation) (*invoice.Invoice, error)

type Repository interface {
	List(ctx context.Context, ownerID int64, params ListQuotationsParams) ([]Quotation, error)
	GetByID(ctx context.Context, ownerID, id int64) (*Quotation, error)
	Create(ctx context.Context, ownerID int64, q *Quotation) error
	Update(ctx context.Context, ownerID int64, q *Quotation, replaceLines bool) error
	Delete(ctx context.Context, ownerID, id int64) (*Quotation, error)
	Convert(ctx context.Context, ownerID, id int64, build InvoiceBuilder) (*Conversion, error)
	CheckParties(ctx context.Context, ownerID int64, parties document.Parties) error
}

const columns = `
	id, company_id, client_id, quotation_number, issue_date, valid_until,
	status, subtotal, tax_amount, discount_amount, total, currency, notes,
	terms, converted_invoice_id, created_by, created_at, updated_at`

type scoped struct {
	Quotation
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
	params ListQuotationsParams,
) ([]Quotation, error) {
	params.Normalize()

	var f core.Filter
	f.Where(tenant.OwnedCompanies, ownerID)
	f.Search(params.Search, "quotation_number", "notes")
	core.EqPtr(&f, "company_id", params.CompanyID)
	core.EqPtr(&f, "client_id", params.ClientID)
	f.EqString("status", params.Status)

	page, args := f.Page(params.ListParams)
	query := fmt.Sprintf(`
		SELECT %s
		FROM quotations
		WHERE %s
		ORDER BY created_at DESC, id DESC
		%s`, columns, f.Clause(), page)

	quotations := []Quotation{}
	if err := r.db.SelectContext(ctx, &quotations, query, args...); err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}

	return quotations, nil
}

func (r *repository) GetByID(ctx context.Context, ownerID, id int64) (*Quotation, error) {
	q, err := get(ctx, r.db, ownerID, id, "")
	if err != nil {
		return nil, err
	}

	q.Lines, err = document.QuotationLines.Load(ctx, r.db, q.ID)
	if err != nil {
		return nil, err
	}

	return q, nil
}

func get(ctx context.Context, db core.DBTX, ownerID, id int64, suffix string) (*Quotation, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`SELECT %s FROM quotations WHERE %s %s`, columns, f.Clause(), suffix)

	var q Quotation
	if err := db.GetContext(ctx, &q, query, f.Args()...); err != nil {
		return nil, core.MapPGError("get quotation", err)
	}

	return &q, nil
}

func (r *repository) Create(ctx context.Context, ownerID int64, q *Quotation) error {
	query := `
		INSERT INTO quotations (
			company_id, client_id, quotation_number, issue_date, valid_until,
			status, subtotal, tax_amount, discount_amount, total, currency,
			notes, terms, created_by
		)
		SELECT :company_id, :client_id, :quotation_number, :issue_date,
		       :valid_until, :status, :subtotal, :tax_amount, :discount_amount,
		       :total, :currency, :notes, :terms, :created_by
		WHERE EXISTS (
			SELECT 1 FROM companies
			WHERE id = :company_id AND owner_id = :scope_owner_id
		)
		RETURNING ` + columns

	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		lines := q.Lines

		err := core.NamedGet(ctx, tx, q, query, scoped{Quotation: *q, ScopeOwnerID: ownerID})
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("create quotation: %w", core.ErrForbidden)
		}
		if err != nil {
			return core.MapPGError("create quotation", err)
		}

		q.Lines, err = document.QuotationLines.Insert(ctx, tx, q.ID, lines)
		return err
	})
}

const updateQuery = `
	UPDATE quotations SET
		client_id = :client_id, quotation_number = :quotation_number,
		issue_date = :issue_date, valid_until = :valid_until, status = :status,
		subtotal = :subtotal, tax_amount = :tax_amount,
		discount_amount = :discount_amount, total = :total,
		currency = :currency, notes = :notes, terms = :terms,
		converted_invoice_id = :converted_invoice_id, updated_at = NOW()
	WHERE id = :id
	  AND company_id IN (SELECT id FROM companies WHERE owner_id = :scope_owner_id)
	RETURNING ` + columns

func (r *repository) Update(ctx context.Context, ownerID int64, q *Quotation, replaceLines bool) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		lines := q.Lines

		if err := core.NamedGet(ctx, tx, q, updateQuery, scoped{Quotation: *q, ScopeOwnerID: ownerID}); err != nil {
			return core.MapPGError("update quotation", err)
		}

		var err error
		if replaceLines {
			q.Lines, err = document.QuotationLines.Replace(ctx, tx, q.ID, lines)
		} else {
			q.Lines, err = document.QuotationLines.Load(ctx, tx, q.ID)
		}
		return err
	})
}

func (r *repository) Delete(ctx context.Context, ownerID, id int64) (*Quotation, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`DELETE FROM quotations WHERE %s RETURNING %s`, f.Clause(), columns)

	var q Quotation
	if err := r.db.GetContext(ctx, &q, query, f.Args()...); err != nil {
		return nil, core.MapPGError("delete quotation", err)
	}

	return &q, nil
}

// Convert locks the quotation, inserts the invoice build returns and points
// the quotation at it, all in one transaction.
func (r *repository) Convert(ctx context.Context, ownerID, id int64, build InvoiceBuilder) (*Conversion, error) {
	var out Conversion

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		q, err := get(ctx, tx, ownerID, id, "FOR UPDATE")
		if err != nil {
			return err
		}
		if q.Lines, err = document.QuotationLines.Load(ctx, tx, q.ID); err != nil {
			return err
		}

		inv, err := build(q)
		if err != nil {
			return err
		}
		if err := invoice.Insert(ctx, tx, ownerID, inv); err != nil {
			return err
		}

		q.ConvertedInvoiceID = &inv.ID
		q.Status = StatusConverted
		if err := core.NamedGet(ctx, tx, q, updateQuery, scoped{Quotation: *q, ScopeOwnerID: ownerID}); err != nil {
			return core.MapPGError("mark quotation converted", err)
		}
		if q.Lines, err = document.QuotationLines.Load(ctx, tx, q.ID); err != nil {
			return err
		}

		out = Conversion{Quotation: q, Invoice: inv}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *repository) CheckParties(ctx context.Context, ownerID int64, parties document.Parties) error {
	return document.CheckParties(ctx, r.db, ownerID, parties)
}
