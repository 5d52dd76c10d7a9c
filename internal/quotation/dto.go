// AngelaMos | 2026
// dto.go

package quotation

import (
	"strings"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/document"
)

type Fields struct {
	ValidUntil *core.Date `json:"validUntil"`
	document.AmountFields
	Currency *string              `json:"currency"`
	Notes    *string              `json:"notes"`
	Terms    *string              `json:"terms"`
	Lines    []document.LineInput `json:"lines"`
}

func (f *Fields) normalize() {
	core.TrimAll(&f.Currency, &f.Notes, &f.Terms)
	if f.Currency != nil {
		upper := strings.ToUpper(*f.Currency)
		f.Currency = &upper
	}
}

func (f *Fields) apply(q *Quotation) {
	if f.ValidUntil != nil {
		q.ValidUntil = f.ValidUntil
		if f.ValidUntil.IsZero() {
			q.ValidUntil = nil
		}
	}
	f.AmountFields.Apply(&q.Amounts)
	if f.Currency != nil && *f.Currency != "" {
		q.Currency = *f.Currency
	}
	core.SetOpt(&q.Notes, f.Notes)
	core.SetOpt(&q.Terms, f.Terms)
}

type CreateQuotationRequest struct {
	CompanyID       *int64     `json:"companyId"`
	ClientID        *int64     `json:"clientId"        validate:"required"`
	QuotationNumber string     `json:"quotationNumber" validate:"required"`
	IssueDate       *core.Date `json:"issueDate"       validate:"required"`
	Status          string     `json:"status"          validate:"omitempty,oneof=draft sent accepted rejected expired converted"`
	Fields
}

func (r *CreateQuotationRequest) Normalize() {
	r.QuotationNumber = strings.TrimSpace(r.QuotationNumber)
	r.Status = strings.TrimSpace(r.Status)
	r.normalize()
}

type UpdateQuotationRequest struct {
	ClientID        *int64     `json:"clientId"`
	QuotationNumber *string    `json:"quotationNumber" validate:"omitnil,min=1"`
	IssueDate       *core.Date `json:"issueDate"`
	Status          *string    `json:"status"          validate:"omitnil,oneof=draft sent accepted rejected expired converted"`
	Fields
}

func (r *UpdateQuotationRequest) Normalize() {
	core.TrimAll(&r.QuotationNumber, &r.Status)
	r.normalize()
}

// ConvertRequest names the invoice a quotation becomes. issueDate defaults
// to today.
type ConvertRequest struct {
	InvoiceNumber string     `json:"invoiceNumber" validate:"required"`
	IssueDate     *core.Date `json:"issueDate"`
	DueDate       *core.Date `json:"dueDate"`
}

func (r *ConvertRequest) Normalize() {
	r.InvoiceNumber = strings.TrimSpace(r.InvoiceNumber)
}

type ListQuotationsParams struct {
	core.ListParams
	CompanyID *int64
	ClientID  *int64
	Status    string
}
