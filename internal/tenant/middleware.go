// AngelaMos | 2026
// middleware.go

package tenant

import (
	"net/http"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/middleware"
)

// Middleware must run after middleware.Authenticator. It stores the resolved
// Scope and the user's role on the request context.
func Middleware(resolver *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := middleware.GetIdentity(r.Context())
			if identity == nil {
				core.JSONError(w, core.UnauthorizedError(""))
				return
			}

			scope, err := resolver.Resolve(r.Context(), identity)
			if err != nil {
				core.JSONError(w, err)
				return
			}

			core.SetSpanTenant(r.Context(), scope.UserID, scope.CompanyID, scope.Role)

			ctx := WithScope(r.Context(), *scope)
			ctx = middleware.WithUserRole(ctx, scope.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
