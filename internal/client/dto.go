// AngelaMos | 2026
// dto.go

package client

import (
	"strings"

	"github.com/aurex-pk/aurex-api/internal/core"
)

type Fields struct {
	NameUrdu          *string      `json:"nameUrdu"`
	NTN               *string      `json:"ntn"`
	STRN              *string      `json:"strn"`
	Email             *string      `json:"email"             validate:"omitempty,emailaddr"`
	Phone             *string      `json:"phone"`
	Address           *string      `json:"address"`
	City              *string      `json:"city"`
	ContactPerson     *string      `json:"contactPerson"`
	BankName          *string      `json:"bankName"`
	BankAccountNumber *string      `json:"bankAccountNumber"`
	IBAN              *string      `json:"iban"`
	Balance           *core.Amount `json:"balance"`
}

func (f *Fields) normalize() {
	core.TrimAll(
		&f.NameUrdu, &f.NTN, &f.STRN, &f.Email, &f.Phone, &f.Address,
		&f.City, &f.ContactPerson, &f.BankName, &f.BankAccountNumber, &f.IBAN,
	)
}

func (f *Fields) apply(c *Client) {
	core.SetOpt(&c.NameUrdu, f.NameUrdu)
	core.SetOpt(&c.NTN, f.NTN)
	core.SetOpt(&c.STRN, f.STRN)
	core.SetOpt(&c.Email, f.Email)
	core.SetOpt(&c.Phone, f.Phone)
	core.SetOpt(&c.Address, f.Address)
	core.SetOpt(&c.City, f.City)
	core.SetOpt(&c.ContactPerson, f.ContactPerson)
	core.SetOpt(&c.BankName, f.BankName)
	core.SetOpt(&c.BankAccountNumber, f.BankAccountNumber)
	core.SetOpt(&c.IBAN, f.IBAN)
	c.Balance = core.Dec(f.Balance, c.Balance)
}

type CreateClientRequest struct {
	CompanyID *int64 `json:"companyId"`
	Name      string `json:"name"      validate:"required"`
	Fields
}

func (r *CreateClientRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.normalize()
}

type UpdateClientRequest struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
	Fields
}

func (r *UpdateClientRequest) Normalize() {
	core.TrimAll(&r.Name)
	r.normalize()
}

type ListClientsParams struct {
	core.ListParams
	CompanyID *int64
	City      string
}
