// AngelaMos | 2026
// service.go

package company

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

var ErrHasDependents = core.NewAppError(
	core.ErrForeignKey,
	"company still has clients, items, invoices or other records",
	http.StatusBadRequest,
	"COMPANY_HAS_DEPENDENTS",
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(
	ctx context.Context,
	scope tenant.Scope,
	params ListCompaniesParams,
) ([]Company, error) {
	return s.repo.List(ctx, scope.UserID, params)
}

func (s *Service) Get(ctx context.Context, scope tenant.Scope, id int64) (*Company, error) {
	return s.repo.GetByID(ctx, scope.UserID, id)
}

func (s *Service) Create(
	ctx context.Context,
	scope tenant.Scope,
	req CreateCompanyRequest,
) (*Company, error) {
	ownerID := scope.UserID
	c := &Company{
		OwnerID:         &ownerID,
		Name:            req.Name,
		DefaultCurrency: DefaultCurrency,
	}
	req.apply(c)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(
	ctx context.Context,
	scope tenant.Scope,
	id int64,
	req UpdateCompanyRequest,
) (*Company, error) {
	c, err := s.repo.GetByID(ctx, scope.UserID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	req.apply(c)

	if err := s.repo.Update(ctx, scope.UserID, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete removes a company. Companies that still own rows are refused;
// nothing cascades.
func (s *Service) Delete(ctx context.Context, scope tenant.Scope, id int64) (*Company, error) {
	c, err := s.repo.Delete(ctx, scope.UserID, id)
	if errors.Is(err, core.ErrForeignKey) {
		return nil, fmt.Errorf("delete company %d: %w", id, ErrHasDependents)
	}
	return c, err
}
