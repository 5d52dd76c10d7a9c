// AngelaMos | 2026
// entity.go

package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aurex-pk/aurex-api/internal/core"
)

const MethodCash = "cash"

type Payment struct {
	ID          int64           `db:"id"           json:"id"`
	CompanyID   int64           `db:"company_id"   json:"companyId"`
	InvoiceID   int64           `db:"invoice_id"   json:"invoiceId"`
	Amount      decimal.Decimal `db:"amount"       json:"amount"`
	PaymentDate core.Date       `db:"payment_date" json:"paymentDate"`
	Method      string          `db:"method"       json:"method"`
	Reference   *string         `db:"reference"    json:"reference"`
	Notes       *string         `db:"notes"        json:"notes"`
	CreatedAt   time.Time       `db:"created_at"   json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at"   json:"updatedAt"`
}
