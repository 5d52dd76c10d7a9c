// AngelaMos | 2026
// service.go

package item

import (
	"context"

	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, scope tenant.Scope, params ListItemsParams) ([]Item, error) {
	return s.repo.List(ctx, scope.UserID, params)
}

func (s *Service) Get(ctx context.Context, scope tenant.Scope, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, scope.UserID, id)
}

func (s *Service) Create(ctx context.Context, scope tenant.Scope, req CreateItemRequest) (*Item, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	it := &Item{
		CompanyID: scope.CompanyOrDefault(req.CompanyID),
		Name:      req.Name,
	}
	req.apply(it)

	if err := s.repo.Create(ctx, scope.UserID, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) Update(ctx context.Context, scope tenant.Scope, id int64, req UpdateItemRequest) (*Item, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	it, err := s.repo.GetByID(ctx, scope.UserID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	req.apply(it)

	if err := s.repo.Update(ctx, scope.UserID, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) Delete(ctx context.Context, scope tenant.Scope, id int64) (*Item, error) {
	return s.repo.Delete(ctx, scope.UserID, id)
}
