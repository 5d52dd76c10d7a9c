// AngelaMos | 2026
// scope.go

package tenant

import (
	"context"

	"github.com/aurex-pk/aurex-api/internal/core"
)

// Scope is the caller's application identity: the User row and the Company
// it is linked to. Every tenant-owned row is reachable only through companies
// whose owner is Scope.UserID.
type Scope struct {
	UserID    int64  `db:"id"         json:"userId"`
	CompanyID int64  `db:"company_id" json:"companyId"`
	Role      string `db:"role"       json:"role"`
}

// OwnedCompanies is a Filter template restricting company_id to companies
// owned by the bound user id.
const OwnedCompanies = "company_id IN (SELECT id FROM companies WHERE owner_id = $%[1]d)"

type scopeKey struct{}

func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

func FromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	return s, ok
}

// Current is FromContext for handlers: a request that never passed through
// Middleware is unauthenticated.
func Current(ctx context.Context) (Scope, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return Scope{}, core.UnauthorizedError("")
	}
	return s, nil
}

// CompanyOrDefault returns the requested company id, or the linked company
// when none was supplied.
func (s Scope) CompanyOrDefault(requested *int64) int64 {
	if requested != nil && *requested > 0 {
		return *requested
	}
	return s.CompanyID
}
