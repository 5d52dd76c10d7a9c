// AngelaMos | 2026
// repository.go

package banking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Repository interface {
	List(ctx context.Context, ownerID int64, params ListTransactionsParams) ([]Transaction, error)
	GetByID(ctx context.Context, ownerID, id int64) (*Transaction, error)
	Create(ctx context.Context, ownerID int64, tx *Transaction) error
	Update(ctx context.Context, ownerID int64, tx *Transaction) error
	Delete(ctx context.Context, ownerID, id int64) (*Transaction, error)
	PaymentCompany(ctx context.Context, ownerID, paymentID int64) (int64, error)
}

const columns = `
	id, company_id, transaction_date, description, reference, amount,
	payment_id, created_at, updated_at`

type scoped struct {
	Transaction
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
	params ListTransactionsParams,
) ([]Transaction, error) {
	params.Normalize()

	var f core.Filter
	f.Where(tenant.OwnedCompanies, ownerID)
	f.Search(params.Search, "description", "reference")
	core.EqPtr(&f, "company_id", params.CompanyID)
	core.EqPtr(&f, "payment_id", params.PaymentID)
	if params.Matched != nil {
		f.Where("(payment_id IS NOT NULL) = $%[1]d", *params.Matched)
	}

	page, args := f.Page(params.ListParams)
	query := fmt.Sprintf(`
		SELECT %s
		FROM bank_transactions
		WHERE %s
		ORDER BY created_at DESC, id DESC
		%s`, columns, f.Clause(), page)

	txs := []Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, args...); err != nil {
		return nil, fmt.Errorf("list bank transactions: %w", err)
	}

	return txs, nil
}

func (r *repository) GetByID(ctx context.Context, ownerID, id int64) (*Transaction, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`SELECT %s FROM bank_transactions WHERE %s`, columns, f.Clause())

	var tx Transaction
	if err := r.db.GetContext(ctx, &tx, query, f.Args()...); err != nil {
		return nil, core.MapPGError("get bank transaction", err)
	}

	return &tx, nil
}

func (r *repository) Create(ctx context.Context, ownerID int64, tx *Transaction) error {
	query := `
		INSERT INTO bank_transactions (
			company_id, transaction_date, description, reference, amount, payment_id
		)
		SELECT :company_id, :transaction_date, :description, :reference,
		       :amount, :payment_id
		WHERE EXISTS (
			SELECT 1 FROM companies
			WHERE id = :company_id AND owner_id = :scope_owner_id
		)
		RETURNING ` + columns

	err := core.NamedGet(ctx, r.db, tx, query, scoped{Transaction: *tx, ScopeOwnerID: ownerID})
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("create bank transaction: %w", core.ErrForbidden)
	}
	if err != nil {
		return core.MapPGError("create bank transaction", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, ownerID int64, tx *Transaction) error {
	query := `
		UPDATE bank_transactions SET
			transaction_date = :transaction_date, description = :description,
			reference = :reference, amount = :amount, payment_id = :payment_id,
			updated_at = NOW()
		WHERE id = :id
		  AND company_id IN (SELECT id FROM companies WHERE owner_id = :scope_owner_id)
		RETURNING ` + columns

	if err := core.NamedGet(ctx, r.db, tx, query, scoped{Transaction: *tx, ScopeOwnerID: ownerID}); err != nil {
		return core.MapPGError("update bank transaction", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, ownerID, id int64) (*Transaction, error) {
	var f core.Filter
	f.Eq("id", id)
	f.Where(tenant.OwnedCompanies, ownerID)

	query := fmt.Sprintf(`DELETE FROM bank_transactions WHERE %s RETURNING %s`, f.Clause(), columns)

	var tx Transaction
	if err := r.db.GetContext(ctx, &tx, query, f.Args()...); err != nil {
		return nil, core.MapPGError("delete bank transaction", err)
	}

	return &tx, nil
}

// PaymentCompany returns the company of a payment visible to ownerID.
func (r *repository) PaymentCompany(ctx context.Context, ownerID, paymentID int64) (int64, error) {
	var f core.Filter
	f.Eq("id", paymentID)
	f.Where(tenant.OwnedCompanies, ownerID)

	var companyID int64
	query := fmt.Sprintf(`SELECT company_id FROM payments WHERE %s`, f.Clause())
	if err := r.db.GetContext(ctx, &companyID, query, f.Args()...); err != nil {
		return 0, core.MapPGError("get matched payment", err)
	}

	return companyID, nil
}
