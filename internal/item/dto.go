// AngelaMos | 2026
// dto.go

package item

import (
	"strings"

	"github.com/aurex-pk/aurex-api/internal/core"
)

type Fields struct {
	NameUrdu    *string      `json:"nameUrdu"`
	Description *string      `json:"description"`
	UnitPrice   *core.Amount `json:"unitPrice"`
	Unit        *string      `json:"unit"`
	TaxRate     *core.Amount `json:"taxRate"`
	IsService   *bool        `json:"isService"`
	SKU         *string      `json:"sku"`
}

func (f *Fields) normalize() {
	core.TrimAll(&f.NameUrdu, &f.Description, &f.Unit, &f.SKU)
}

func (f *Fields) validate() error {
	if f.UnitPrice != nil && f.UnitPrice.IsNegative() {
		return core.BadRequestError("INVALID_UNIT_PRICE", "unitPrice must be zero or greater")
	}
	if f.TaxRate != nil && f.TaxRate.IsNegative() {
		return core.BadRequestError("INVALID_TAX_RATE", "taxRate must be zero or greater")
	}
	return nil
}

func (f *Fields) apply(it *Item) {
	core.SetOpt(&it.NameUrdu, f.NameUrdu)
	core.SetOpt(&it.Description, f.Description)
	core.SetOpt(&it.Unit, f.Unit)
	core.SetOpt(&it.SKU, f.SKU)
	it.UnitPrice = core.Dec(f.UnitPrice, it.UnitPrice)
	it.TaxRate = core.Dec(f.TaxRate, it.TaxRate)
	if f.IsService != nil {
		it.IsService = *f.IsService
	}
}

type CreateItemRequest struct {
	CompanyID *int64 `json:"companyId"`
	Name      string `json:"name"      validate:"required"`
	Fields
}

func (r *CreateItemRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.normalize()
}

type UpdateItemRequest struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
	Fields
}

func (r *UpdateItemRequest) Normalize() {
	core.TrimAll(&r.Name)
	r.normalize()
}

type ListItemsParams struct {
	core.ListParams
	CompanyID *int64
	IsService *bool
}
