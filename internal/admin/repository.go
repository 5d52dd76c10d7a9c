// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aurex-pk/aurex-api/internal/core"
)

// TenantStats summarises every company owned by one user.
type TenantStats struct {
	Companies      int64           `db:"companies"       json:"companies"`
	Clients        int64           `db:"clients"         json:"clients"`
	Items          int64           `db:"items"           json:"items"`
	Invoices       int64           `db:"invoices"        json:"invoices"`
	TaxInvoices    int64           `db:"tax_invoices"    json:"taxInvoices"`
	Quotations     int64           `db:"quotations"      json:"quotations"`
	OpenQuotations int64           `db:"open_quotations" json:"openQuotations"`
	Outstanding    decimal.Decimal `db:"outstanding"     json:"outstanding"`
	Collected      decimal.Decimal `db:"collected"       json:"collected"`
	Unmatched      int64           `db:"unmatched"       json:"unmatchedBankTransactions"`
}

type StatsRepository interface {
	TenantStats(ctx context.Context, ownerID int64) (*TenantStats, error)
}

type statsRepository struct {
	db core.DBTX
}

func NewStatsRepository(db core.DBTX) StatsRepository {
	return &statsRepository{db: db}
}

// Outstanding excludes paid and cancelled invoices.
func (r *statsRepository) TenantStats(ctx context.Context, ownerID int64) (*TenantStats, error) {
	query := `
		WITH owned AS (SELECT id FROM companies WHERE owner_id = $1)
		SELECT
			(SELECT COUNT(*) FROM owned) AS companies,
			(SELECT COUNT(*) FROM clients WHERE company_id IN (SELECT id FROM owned)) AS clients,
			(SELECT COUNT(*) FROM items WHERE company_id IN (SELECT id FROM owned)) AS items,
			(SELECT COUNT(*) FROM invoices
			  WHERE kind = 'standard' AND company_id IN (SELECT id FROM owned)) AS invoices,
			(SELECT COUNT(*) FROM invoices
			  WHERE kind = 'tax' AND company_id IN (SELECT id FROM owned)) AS tax_invoices,
			(SELECT COUNT(*) FROM quotations WHERE company_id IN (SELECT id FROM owned)) AS quotations,
			(SELECT COUNT(*) FROM quotations
			  WHERE status IN ('draft', 'sent', 'accepted')
			    AND company_id IN (SELECT id FROM owned)) AS open_quotations,
			(SELECT COALESCE(SUM(total - amount_paid), 0) FROM invoices
			  WHERE status NOT IN ('paid', 'cancelled')
			    AND company_id IN (SELECT id FROM owned)) AS outstanding,
			(SELECT COALESCE(SUM(amount), 0) FROM payments
			  WHERE company_id IN (SELECT id FROM owned)) AS collected,
			(SELECT COUNT(*) FROM bank_transactions
			  WHERE payment_id IS NULL AND company_id IN (SELECT id FROM owned)) AS unmatched`

	var s TenantStats
	if err := r.db.GetContext(ctx, &s, query, ownerID); err != nil {
		return nil, fmt.Errorf("tenant stats: %w", err)
	}

	return &s, nil
}
