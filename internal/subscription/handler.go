// AngelaMos | 2026
// handler.go

package subscription

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/middleware"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validator: core.NewValidator()}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/subscriptions", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/", h.Apply)
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	subject := middleware.GetSubject(r.Context())
	if subject == "" {
		core.JSONError(w, core.UnauthorizedError(""))
		return
	}

	v, err := h.service.Get(r.Context(), subject)
	if err != nil {
		core.RespondError(w, err, "subscription")
		return
	}

	core.OK(w, v)
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	subject := middleware.GetSubject(r.Context())
	if subject == "" {
		core.JSONError(w, core.UnauthorizedError(""))
		return
	}

	var req ActionRequest
	if err := core.Bind(r, h.validator, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	var companyID int64
	if scope, ok := tenant.FromContext(r.Context()); ok {
		companyID = scope.CompanyID
	}

	v, err := h.service.Apply(r.Context(), subject, companyID, req)
	if err != nil {
		core.RespondError(w, err, "subscription")
		return
	}

	core.OK(w, v)
}
