// AngelaMos | 2026
// dto.go

package banking

import (
	"github.com/aurex-pk/aurex-api/internal/core"
)

type Fields struct {
	Description *string `json:"description"`
	Reference   *string `json:"reference"`
}

func (f *Fields) normalize() {
	core.TrimAll(&f.Description, &f.Reference)
}

func (f *Fields) apply(tx *Transaction) {
	core.SetOpt(&tx.Description, f.Description)
	core.SetOpt(&tx.Reference, f.Reference)
}

type CreateTransactionRequest struct {
	CompanyID       *int64       `json:"companyId"`
	TransactionDate *core.Date   `json:"transactionDate" validate:"required"`
	Amount          *core.Amount `json:"amount"          validate:"required"`
	PaymentID       *int64       `json:"paymentId"`
	Fields
}

func (r *CreateTransactionRequest) Normalize() {
	r.normalize()
}

// UpdateTransactionRequest matches a transaction with "paymentId": <id> and
// unmatches it with "paymentId": null.
type UpdateTransactionRequest struct {
	TransactionDate *core.Date           `json:"transactionDate"`
	Amount          *core.Amount         `json:"amount"`
	PaymentID       core.Nullable[int64] `json:"paymentId"`
	Fields
}

func (r *UpdateTransactionRequest) Normalize() {
	r.normalize()
}

type ListTransactionsParams struct {
	core.ListParams
	CompanyID *int64
	PaymentID *int64
	Matched   *bool
}
