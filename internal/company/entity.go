// AngelaMos | 2026
// entity.go

package company

import (
	"time"
)

type Company struct {
	ID                int64     `db:"id"                  json:"id"`
	OwnerID           *int64    `db:"owner_id"            json:"ownerId"`
	Name              string    `db:"name"                json:"name"`
	NameUrdu          *string   `db:"name_urdu"           json:"nameUrdu"`
	NTN               *string   `db:"ntn"                 json:"ntn"`
	STRN              *string   `db:"strn"                json:"strn"`
	Address           *string   `db:"address"             json:"address"`
	City              *string   `db:"city"                json:"city"`
	Province          *string   `db:"province"            json:"province"`
	PostalCode        *string   `db:"postal_code"         json:"postalCode"`
	Country           *string   `db:"country"             json:"country"`
	Phone             *string   `db:"phone"               json:"phone"`
	Email             *string   `db:"email"               json:"email"`
	Website           *string   `db:"website"             json:"website"`
	BankName          *string   `db:"bank_name"           json:"bankName"`
	BankAccountTitle  *string   `db:"bank_account_title"  json:"bankAccountTitle"`
	BankAccountNumber *string   `db:"bank_account_number" json:"bankAccountNumber"`
	IBAN              *string   `db:"iban"                json:"iban"`
	DefaultCurrency   string    `db:"default_currency"    json:"defaultCurrency"`
	CreatedAt         time.Time `db:"created_at"          json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at"          json:"updatedAt"`
}

const DefaultCurrency = "PKR"
