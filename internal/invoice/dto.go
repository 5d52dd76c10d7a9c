// AngelaMos | 2026
// dto.go

package invoice

import (
	"strings"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/document"
)

type Fields struct {
	DueDate *core.Date `json:"dueDate"`
	document.AmountFields
	AmountPaid *core.Amount `json:"amountPaid"`
	Currency   *string      `json:"currency"`
	Notes      *string      `json:"notes"`
	Terms      *string      `json:"terms"`
	// Lines replaces every stored line when present.
	Lines []document.LineInput `json:"lines"`
}

func (f *Fields) normalize() {
	core.TrimAll(&f.Currency, &f.Notes, &f.Terms)
	if f.Currency != nil {
		upper := strings.ToUpper(*f.Currency)
		f.Currency = &upper
	}
}

func (f *Fields) apply(inv *Invoice) {
	if f.DueDate != nil {
		inv.DueDate = f.DueDate
		if f.DueDate.IsZero() {
			inv.DueDate = nil
		}
	}
	f.AmountFields.Apply(&inv.Amounts)
	inv.AmountPaid = core.Dec(f.AmountPaid, inv.AmountPaid)
	if f.Currency != nil && *f.Currency != "" {
		inv.Currency = *f.Currency
	}
	core.SetOpt(&inv.Notes, f.Notes)
	core.SetOpt(&inv.Terms, f.Terms)
}

type CreateInvoiceRequest struct {
	CompanyID     *int64     `json:"companyId"     validate:"required"`
	ClientID      *int64     `json:"clientId"      validate:"required"`
	InvoiceNumber string     `json:"invoiceNumber" validate:"required"`
	IssueDate     *core.Date `json:"issueDate"     validate:"required"`
	Status        string     `json:"status"        validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	Fields
}

func (r *CreateInvoiceRequest) Normalize() {
	r.InvoiceNumber = strings.TrimSpace(r.InvoiceNumber)
	r.Status = strings.TrimSpace(r.Status)
	r.normalize()
}

type UpdateInvoiceRequest struct {
	ClientID      *int64     `json:"clientId"`
	InvoiceNumber *string    `json:"invoiceNumber" validate:"omitnil,min=1"`
	IssueDate     *core.Date `json:"issueDate"`
	Status        *string    `json:"status"        validate:"omitnil,oneof=draft sent paid overdue cancelled"`
	Fields
}

func (r *UpdateInvoiceRequest) Normalize() {
	core.TrimAll(&r.InvoiceNumber, &r.Status)
	r.normalize()
}

type ListInvoicesParams struct {
	core.ListParams
	CompanyID *int64
	ClientID  *int64
	Status    string
}
