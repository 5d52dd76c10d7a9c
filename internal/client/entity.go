// AngelaMos | 2026
// entity.go

package client

import (
	"time"

	"github.com/shopspring/decimal"
)

type Client struct {
	ID                int64           `db:"id"                  json:"id"`
	CompanyID         int64           `db:"company_id"          json:"companyId"`
	Name              string          `db:"name"                json:"name"`
	NameUrdu          *string         `db:"name_urdu"           json:"nameUrdu"`
	NTN               *string         `db:"ntn"                 json:"ntn"`
	STRN              *string         `db:"strn"                json:"strn"`
	Email             *string         `db:"email"               json:"email"`
	Phone             *string         `db:"phone"               json:"phone"`
	Address           *string         `db:"address"             json:"address"`
	City              *string         `db:"city"                json:"city"`
	ContactPerson     *string         `db:"contact_person"      json:"contactPerson"`
	BankName          *string         `db:"bank_name"           json:"bankName"`
	BankAccountNumber *string         `db:"bank_account_number" json:"bankAccountNumber"`
	IBAN              *string         `db:"iban"                json:"iban"`
	Balance           decimal.Decimal `db:"balance"             json:"balance"`
	CreatedAt         time.Time       `db:"created_at"          json:"createdAt"`
	UpdatedAt         time.Time       `db:"updated_at"          json:"updatedAt"`
}
