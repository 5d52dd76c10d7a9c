// AngelaMos | 2026
// service.go

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

var ErrHasDocuments = core.NewAppError(
	core.ErrForeignKey,
	"client still has invoices or quotations",
	http.StatusBadRequest,
	"CLIENT_HAS_DEPENDENTS",
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, scope tenant.Scope, params ListClientsParams) ([]Client, error) {
	return s.repo.List(ctx, scope.UserID, params)
}

func (s *Service) Get(ctx context.Context, scope tenant.Scope, id int64) (*Client, error) {
	return s.repo.GetByID(ctx, scope.UserID, id)
}

func (s *Service) Create(ctx context.Context, scope tenant.Scope, req CreateClientRequest) (*Client, error) {
	c := &Client{
		CompanyID: scope.CompanyOrDefault(req.CompanyID),
		Name:      req.Name,
	}
	req.apply(c)

	if err := s.repo.Create(ctx, scope.UserID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(
	ctx context.Context,
	scope tenant.Scope,
	id int64,
	req UpdateClientRequest,
) (*Client, error) {
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

func (s *Service) Delete(ctx context.Context, scope tenant.Scope, id int64) (*Client, error) {
	c, err := s.repo.Delete(ctx, scope.UserID, id)
	if errors.Is(err, core.ErrForeignKey) {
		return nil, fmt.Errorf("delete client %d: %w", id, ErrHasDocuments)
	}
	return c, err
}
