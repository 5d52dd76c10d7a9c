// AngelaMos | 2026
// dto.go

package company

import (
	"strings"

	"github.com/aurex-pk/aurex-api/internal/core"
)

// Fields are the optional company attributes shared by create and update.
type Fields struct {
	NameUrdu          *string `json:"nameUrdu"`
	NTN               *string `json:"ntn"`
	STRN              *string `json:"strn"`
	Address           *string `json:"address"`
	City              *string `json:"city"`
	Province          *string `json:"province"`
	PostalCode        *string `json:"postalCode"`
	Country           *string `json:"country"`
	Phone             *string `json:"phone"`
	Email             *string `json:"email"             validate:"omitempty,emailaddr"`
	Website           *string `json:"website"`
	BankName          *string `json:"bankName"`
	BankAccountTitle  *string `json:"bankAccountTitle"`
	BankAccountNumber *string `json:"bankAccountNumber"`
	IBAN              *string `json:"iban"`
	DefaultCurrency   *string `json:"defaultCurrency"`
}

func (f *Fields) normalize() {
	core.TrimAll(
		&f.NameUrdu, &f.NTN, &f.STRN, &f.Address, &f.City, &f.Province,
		&f.PostalCode, &f.Country, &f.Phone, &f.Email, &f.Website,
		&f.BankName, &f.BankAccountTitle, &f.BankAccountNumber, &f.IBAN,
		&f.DefaultCurrency,
	)
}

func (f *Fields) apply(c *Company) {
	core.SetOpt(&c.NameUrdu, f.NameUrdu)
	core.SetOpt(&c.NTN, f.NTN)
	core.SetOpt(&c.STRN, f.STRN)
	core.SetOpt(&c.Address, f.Address)
	core.SetOpt(&c.City, f.City)
	core.SetOpt(&c.Province, f.Province)
	core.SetOpt(&c.PostalCode, f.PostalCode)
	core.SetOpt(&c.Country, f.Country)
	core.SetOpt(&c.Phone, f.Phone)
	core.SetOpt(&c.Email, f.Email)
	core.SetOpt(&c.Website, f.Website)
	core.SetOpt(&c.BankName, f.BankName)
	core.SetOpt(&c.BankAccountTitle, f.BankAccountTitle)
	core.SetOpt(&c.BankAccountNumber, f.BankAccountNumber)
	core.SetOpt(&c.IBAN, f.IBAN)
	if f.DefaultCurrency != nil && *f.DefaultCurrency != "" {
		c.DefaultCurrency = *f.DefaultCurrency
	}
}

type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required"`
	Fields
}

func (r *CreateCompanyRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.normalize()
}

type UpdateCompanyRequest struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
	Fields
}

func (r *UpdateCompanyRequest) Normalize() {
	core.TrimAll(&r.Name)
	r.normalize()
}

type ListCompaniesParams struct {
	core.ListParams
	City string
}
