// AngelaMos | 2026
// entity.go

package banking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aurex-pk/aurex-api/internal/core"
)

// Transaction is one imported bank statement row. Amount is signed: credits
// are positive and debits negative. PaymentID is set once it is matched.
type Transaction struct {
	ID              int64           `db:"id"               json:"id"`
	CompanyID       int64           `db:"company_id"       json:"companyId"`
	TransactionDate core.Date       `db:"transaction_date" json:"transactionDate"`
	Description     *string         `db:"description"      json:"description"`
	Reference       *string         `db:"reference"        json:"reference"`
	Amount          decimal.Decimal `db:"amount"           json:"amount"`
	PaymentID       *int64          `db:"payment_id"       json:"paymentId"`
	CreatedAt       time.Time       `db:"created_at"       json:"createdAt"`
	UpdatedAt       time.Time       `db:"updated_at"       json:"updatedAt"`
}
