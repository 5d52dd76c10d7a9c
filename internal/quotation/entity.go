// AngelaMos | 2026
// entity.go

package quotation

import (
	"time"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/document"
	"github.com/aurex-pk/aurex-api/internal/invoice"
)

const (
	StatusDraft     = "draft"
	StatusConverted = "converted"
)

type Quotation struct {
	ID              int64      `db:"id"               json:"id"`
	CompanyID       int64      `db:"company_id"       json:"companyId"`
	ClientID        int64      `db:"client_id"        json:"clientId"`
	QuotationNumber string     `db:"quotation_number" json:"quotationNumber"`
	IssueDate       core.Date  `db:"issue_date"       json:"issueDate"`
	ValidUntil      *core.Date `db:"valid_until"      json:"validUntil"`
	Status          string     `db:"status"           json:"status"`
	document.Amounts
	Currency           string    `db:"currency"             json:"currency"`
	Notes              *string   `db:"notes"                json:"notes"`
	Terms              *string   `db:"terms"                json:"terms"`
	ConvertedInvoiceID *int64    `db:"converted_invoice_id" json:"convertedInvoiceId"`
	CreatedBy          *int64    `db:"created_by"           json:"createdBy"`
	CreatedAt          time.Time `db:"created_at"           json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at"           json:"updatedAt"`

	Lines []document.Line `db:"-" json:"lines,omitempty"`
}

// Conversion is the result of turning a quotation into an invoice.
type Conversion struct {
	Quotation *Quotation       `json:"quotation"`
	Invoice   *invoice.Invoice `json:"invoice"`
}
