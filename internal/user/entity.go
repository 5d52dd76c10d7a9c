// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

const (
	RoleOwner      = "owner"
	RoleAccountant = "accountant"
	RoleStaff      = "staff"
)

type User struct {
	ID           int64     `db:"id"            json:"id"`
	AuthID       *string   `db:"auth_id"       json:"authId"`
	Email        *string   `db:"email"         json:"email"`
	Name         string    `db:"name"          json:"name"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	Role         string    `db:"role"          json:"role"`
	CompanyID    *int64    `db:"company_id"    json:"companyId"`
	CreatedAt    time.Time `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updatedAt"`
}

func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}
