// AngelaMos | 2026
// handler.go

package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/resource"
)

type Handler struct {
	*resource.Handler[Client, CreateClientRequest, UpdateClientRequest, ListClientsParams]
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		Handler: resource.New[Client, CreateClientRequest, UpdateClientRequest, ListClientsParams](
			service,
			resource.Config[Client, ListClientsParams]{
				Name:      "client",
				Key:       "client",
				ParseList: parseListParams,
				ID:        func(c *Client) int64 { return c.ID },
			},
		),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/clients", h.Routes)
}

func parseListParams(r *http.Request) (ListClientsParams, error) {
	companyID, err := core.QueryInt64(r, "companyId")
	if err != nil {
		return ListClientsParams{}, err
	}
	return ListClientsParams{
		ListParams: core.ParseListParams(r),
		CompanyID:  companyID,
		City:       core.QueryString(r, "city"),
	}, nil
}
