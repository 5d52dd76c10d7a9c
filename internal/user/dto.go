// AngelaMos | 2026
// dto.go

package user

import (
	"strings"

	"github.com/aurex-pk/aurex-api/internal/core"
)

type CreateUserRequest struct {
	CompanyID *int64 `json:"companyId"`
	Email     string `json:"email"     validate:"required,emailaddr"`
	Name      string `json:"name"      validate:"required"`
	Password  string `json:"password"  validate:"required,min=8,max=128"`
	Role      string `json:"role"      validate:"required,oneof=owner accountant staff"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)
}

type UpdateUserRequest struct {
	Email    *string `json:"email"    validate:"omitnil,min=1,emailaddr"`
	Name     *string `json:"name"     validate:"omitnil,min=1"`
	Password *string `json:"password" validate:"omitnil,min=8,max=128"`
	Role     *string `json:"role"     validate:"omitnil,oneof=owner accountant staff"`
}

func (r *UpdateUserRequest) Normalize() {
	core.TrimAll(&r.Email, &r.Name, &r.Role)
}

type ListUsersParams struct {
	core.ListParams
	CompanyID *int64
	Role      string
}
