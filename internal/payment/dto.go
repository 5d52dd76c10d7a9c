// AngelaMos | 2026
// dto.go

package payment

import (
	"strings"

	"github.com/aurex-pk/aurex-api/internal/core"
)

type Fields struct {
	Reference *string `json:"reference"`
	Notes     *string `json:"notes"`
}

func (f *Fields) normalize() {
	core.TrimAll(&f.Reference, &f.Notes)
}

func (f *Fields) apply(p *Payment) {
	core.SetOpt(&p.Reference, f.Reference)
	core.SetOpt(&p.Notes, f.Notes)
}

// CreatePaymentRequest records money received against an invoice. The
// payment always belongs to the invoice's company; companyId, when sent,
// must name that company.
type CreatePaymentRequest struct {
	CompanyID   *int64       `json:"companyId"`
	InvoiceID   *int64       `json:"invoiceId"   validate:"required"`
	Amount      *core.Amount `json:"amount"      validate:"required"`
	PaymentDate *core.Date   `json:"paymentDate" validate:"required"`
	Method      string       `json:"method"      validate:"omitempty,oneof=cash bank_transfer cheque card online other"`
	Fields
}

func (r *CreatePaymentRequest) Normalize() {
	r.Method = strings.TrimSpace(r.Method)
	r.normalize()
}

type UpdatePaymentRequest struct {
	Amount      *core.Amount `json:"amount"`
	PaymentDate *core.Date   `json:"paymentDate"`
	Method      *string      `json:"method" validate:"omitnil,oneof=cash bank_transfer cheque card online other"`
	Fields
}

func (r *UpdatePaymentRequest) Normalize() {
	core.TrimAll(&r.Method)
	r.normalize()
}

type ListPaymentsParams struct {
	core.ListParams
	CompanyID *int64
	InvoiceID *int64
	Method    string
}
