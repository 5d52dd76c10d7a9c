// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

var ErrDeleteSelf = core.NewAppError(
	core.ErrForbidden,
	"cannot delete your own user",
	http.StatusBadRequest,
	"CANNOT_DELETE_SELF",
)

var errEmailExists = core.DuplicateError("email")

type Service struct {
	repo Repository
	hash func(string) (string, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, hash: core.HashPassword}
}

func (s *Service) List(ctx context.Context, scope tenant.Scope, params ListUsersParams) ([]User, error) {
	return s.repo.List(ctx, scope.UserID, params)
}

func (s *Service) Get(ctx context.Context, scope tenant.Scope, id int64) (*User, error) {
	return s.repo.GetByID(ctx, scope.UserID, id)
}

// Me returns the caller's own row.
func (s *Service) Me(ctx context.Context, scope tenant.Scope) (*User, error) {
	return s.repo.GetByID(ctx, scope.UserID, scope.UserID)
}

func (s *Service) Create(ctx context.Context, scope tenant.Scope, req CreateUserRequest) (*User, error) {
	if err := s.ensureEmailFree(ctx, req.Email, 0); err != nil {
		return nil, err
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	companyID := scope.CompanyOrDefault(req.CompanyID)
	u := &User{
		Email:        &req.Email,
		Name:         req.Name,
		PasswordHash: &hash,
		Role:         req.Role,
		CompanyID:    &companyID,
	}

	if err := s.repo.Create(ctx, scope.UserID, u); err != nil {
		return nil, mapDuplicate(err)
	}
	return u, nil
}

func (s *Service) Update(
	ctx context.Context,
	scope tenant.Scope,
	id int64,
	req UpdateUserRequest,
) (*User, error) {
	u, err := s.repo.GetByID(ctx, scope.UserID, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && (u.Email == nil || *u.Email != *req.Email) {
		if err := s.ensureEmailFree(ctx, *req.Email, u.ID); err != nil {
			return nil, err
		}
		u.Email = req.Email
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Password != nil {
		hash, err := s.hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = &hash
	}

	if err := s.repo.Update(ctx, scope.UserID, u); err != nil {
		return nil, mapDuplicate(err)
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, scope tenant.Scope, id int64) (*User, error) {
	if id == scope.UserID {
		return nil, ErrDeleteSelf
	}
	return s.repo.Delete(ctx, scope.UserID, id)
}

func (s *Service) ensureEmailFree(ctx context.Context, email string, excludeID int64) error {
	exists, err := s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return errEmailExists
	}
	return nil
}

// mapDuplicate covers the window between the existence check and the write.
func mapDuplicate(err error) error {
	if errors.Is(err, core.ErrDuplicateKey) {
		return errEmailExists
	}
	return err
}
