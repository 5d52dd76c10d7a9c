// AngelaMos | 2026
// handler.go

package company

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/resource"
)

type Handler struct {
	*resource.Handler[Company, CreateCompanyRequest, UpdateCompanyRequest, ListCompaniesParams]
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		Handler: resource.New[Company, CreateCompanyRequest, UpdateCompanyRequest, ListCompaniesParams](
			service,
			resource.Config[Company, ListCompaniesParams]{
				Name:      "company",
				Key:       "company",
				ParseList: parseListParams,
				ID:        func(c *Company) int64 { return c.ID },
			},
		),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/companies", h.Routes)
}

func parseListParams(r *http.Request) (ListCompaniesParams, error) {
	return ListCompaniesParams{
		ListParams: core.ParseListParams(r),
		City:       core.QueryString(r, "city"),
	}, nil
}
