// AngelaMos | 2026
// entity.go

package item

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID          int64           `db:"id"          json:"id"`
	CompanyID   int64           `db:"company_id"  json:"companyId"`
	Name        string          `db:"name"        json:"name"`
	NameUrdu    *string         `db:"name_urdu"   json:"nameUrdu"`
	Description *string         `db:"description" json:"description"`
	UnitPrice   decimal.Decimal `db:"unit_price"  json:"unitPrice"`
	Unit        *string         `db:"unit"        json:"unit"`
	TaxRate     decimal.Decimal `db:"tax_rate"    json:"taxRate"`
	IsService   bool            `db:"is_service"  json:"isService"`
	SKU         *string         `db:"sku"         json:"sku"`
	CreatedAt   time.Time       `db:"created_at"  json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at"  json:"updatedAt"`
}
