// AngelaMos | 2026
// document.go

// Package document holds the pieces invoices and quotations share: the
// caller-supplied totals block and priced line rows.
package document

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aurex-pk/aurex-api/internal/core"
)

// Amounts are stored as given. Nothing is recomputed from lines.
type Amounts struct {
	Subtotal       decimal.Decimal `db:"subtotal"        json:"subtotal"`
	TaxAmount      decimal.Decimal `db:"tax_amount"      json:"taxAmount"`
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discountAmount"`
	Total          decimal.Decimal `db:"total"           json:"total"`
}

type AmountFields struct {
	Subtotal       *core.Amount `json:"subtotal"`
	TaxAmount      *core.Amount `json:"taxAmount"`
	DiscountAmount *core.Amount `json:"discountAmount"`
	Total          *core.Amount `json:"total"`
}

func (f AmountFields) Apply(a *Amounts) {
	a.Subtotal = core.Dec(f.Subtotal, a.Subtotal)
	a.TaxAmount = core.Dec(f.TaxAmount, a.TaxAmount)
	a.DiscountAmount = core.Dec(f.DiscountAmount, a.DiscountAmount)
	a.Total = core.Dec(f.Total, a.Total)
}

type Line struct {
	ID          int64           `db:"id"          json:"id"`
	DocumentID  int64           `db:"document_id" json:"-"`
	ItemID      *int64          `db:"item_id"     json:"itemId"`
	Description string          `db:"description" json:"description"`
	Quantity    decimal.Decimal `db:"quantity"    json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"  json:"unitPrice"`
	TaxRate     decimal.Decimal `db:"tax_rate"    json:"taxRate"`
	TaxAmount   decimal.Decimal `db:"tax_amount"  json:"taxAmount"`
	LineTotal   decimal.Decimal `db:"line_total"  json:"lineTotal"`
	SortOrder   int             `db:"sort_order"  json:"sortOrder"`
}

type LineInput struct {
	ItemID      *int64       `json:"itemId"`
	Description string       `json:"description"`
	Quantity    *core.Amount `json:"quantity"`
	UnitPrice   *core.Amount `json:"unitPrice"`
	TaxRate     *core.Amount `json:"taxRate"`
	TaxAmount   *core.Amount `json:"taxAmount"`
	LineTotal   *core.Amount `json:"lineTotal"`
	SortOrder   *int         `json:"sortOrder"`
}

// Lines converts inputs to rows. Quantity defaults to 1 and sortOrder to the
// position in the list.
func Lines(inputs []LineInput) ([]Line, error) {
	out := make([]Line, 0, len(inputs))
	for i, in := range inputs {
		line := Line{
			ItemID:      in.ItemID,
			Description: strings.TrimSpace(in.Description),
			Quantity:    core.Dec(in.Quantity, decimal.NewFromInt(1)),
			UnitPrice:   core.Dec(in.UnitPrice, decimal.Zero),
			TaxRate:     core.Dec(in.TaxRate, decimal.Zero),
			TaxAmount:   core.Dec(in.TaxAmount, decimal.Zero),
			LineTotal:   core.Dec(in.LineTotal, decimal.Zero),
			SortOrder:   i,
		}
		if in.SortOrder != nil {
			line.SortOrder = *in.SortOrder
		}
		if line.Quantity.IsNegative() {
			return nil, core.BadRequestError(
				"INVALID_QUANTITY",
				fmt.Sprintf("lines[%d].quantity must be zero or greater", i),
			)
		}
		if line.UnitPrice.IsNegative() {
			return nil, core.BadRequestError(
				"INVALID_UNIT_PRICE",
				fmt.Sprintf("lines[%d].unitPrice must be zero or greater", i),
			)
		}
		out = append(out, line)
	}
	return out, nil
}

// RequireDate rejects a date that was sent but blank.
func RequireDate(d *core.Date, field string) error {
	if d == nil || d.IsZero() {
		return core.BadRequestError(
			"MISSING_"+core.CodeFor(field),
			field+" is required",
		)
	}
	return nil
}
