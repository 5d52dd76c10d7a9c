// AngelaMos | 2026
// entity.go

package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/document"
)

// Kind separates standard invoices from sales-tax invoices. Both live in the
// invoices table and are served from separate routes.
type Kind string

const (
	KindStandard Kind = "standard"
	KindTax      Kind = "tax"
)

const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

type Invoice struct {
	ID            int64      `db:"id"             json:"id"`
	Kind          Kind       `db:"kind"           json:"kind"`
	CompanyID     int64      `db:"company_id"     json:"companyId"`
	ClientID      int64      `db:"client_id"      json:"clientId"`
	InvoiceNumber string     `db:"invoice_number" json:"invoiceNumber"`
	IssueDate     core.Date  `db:"issue_date"     json:"issueDate"`
	DueDate       *core.Date `db:"due_date"       json:"dueDate"`
	Status        string     `db:"status"         json:"status"`
	document.Amounts
	AmountPaid decimal.Decimal `db:"amount_paid" json:"amountPaid"`
	Currency   string          `db:"currency"    json:"currency"`
	Notes      *string         `db:"notes"       json:"notes"`
	Terms      *string         `db:"terms"       json:"terms"`
	CreatedBy  *int64          `db:"created_by"  json:"createdBy"`
	CreatedAt  time.Time       `db:"created_at"  json:"createdAt"`
	UpdatedAt  time.Time       `db:"updated_at"  json:"updatedAt"`

	// Lines is only loaded for single-row reads and writes.
	Lines []document.Line `db:"-" json:"lines,omitempty"`
}
