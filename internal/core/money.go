// AngelaMos | 2026
// money.go

package core

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// AmountError is returned when a monetary input is neither a JSON number
// nor a numeric string.
type AmountError struct {
	Raw string
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("invalid amount %q", e.Raw)
}

func (e *AmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// Amount is a request-side decimal that accepts 12.5, "12.5" and " 12.50 ".
// Non-numeric text is an error instead of a NaN.
type Amount struct {
	decimal.Decimal
}

func NewAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, &AmountError{Raw: s}
	}
	return Amount{Decimal: d}, nil
}

func MustAmount(s string) Amount {
	a, err := NewAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		text = string(raw[1 : len(raw)-1])
	}

	if strings.TrimSpace(text) == "" {
		return &AmountError{Raw: text}
	}

	parsed, err := NewAmount(text)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Dec unwraps an optional Amount, falling back to def.
func Dec(a *Amount, def decimal.Decimal) decimal.Decimal {
	if a == nil {
		return def
	}
	return a.Decimal
}
