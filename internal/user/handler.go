// AngelaMos | 2026
// handler.go

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/middleware"
	"github.com/aurex-pk/aurex-api/internal/resource"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Handler struct {
	*resource.Handler[User, CreateUserRequest, UpdateUserRequest, ListUsersParams]
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		Handler: resource.New[User, CreateUserRequest, UpdateUserRequest, ListUsersParams](
			service,
			resource.Config[User, ListUsersParams]{
				Name:      "user",
				Key:       "user",
				ParseList: parseListParams,
				ID:        func(u *User) int64 { return u.ID },
			},
		),
		service: service,
	}
}

// RegisterRoutes mounts /users. Reads are open to every role; only owners
// manage users.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Get("/me", h.GetMe)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(RoleOwner))
			r.Post("/", h.Create)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
		})
	})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.Current(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}

	u, err := h.service.Me(r.Context(), scope)
	if err != nil {
		core.RespondError(w, err, "user")
		return
	}

	core.OK(w, u)
}

func parseListParams(r *http.Request) (ListUsersParams, error) {
	companyID, err := core.QueryInt64(r, "companyId")
	if err != nil {
		return ListUsersParams{}, err
	}
	return ListUsersParams{
		ListParams: core.ParseListParams(r),
		CompanyID:  companyID,
		Role:       core.QueryString(r, "role"),
	}, nil
}
