// AngelaMos | 2026
// handler.go

package item

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/resource"
)

type Handler struct {
	*resource.Handler[Item, CreateItemRequest, UpdateItemRequest, ListItemsParams]
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		Handler: resource.New[Item, CreateItemRequest, UpdateItemRequest, ListItemsParams](
			service,
			resource.Config[Item, ListItemsParams]{
				Name:      "item",
				Key:       "item",
				ParseList: parseListParams,
				ID:        func(it *Item) int64 { return it.ID },
			},
		),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/items", h.Routes)
}

func parseListParams(r *http.Request) (ListItemsParams, error) {
	companyID, err := core.QueryInt64(r, "companyId")
	if err != nil {
		return ListItemsParams{}, err
	}

	params := ListItemsParams{
		ListParams: core.ParseListParams(r),
		CompanyID:  companyID,
	}

	if raw := core.QueryString(r, "isService"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return ListItemsParams{}, core.BadRequestError(
				"INVALID_IS_SERVICE", "isService must be true or false",
			)
		}
		params.IsService = &v
	}

	return params, nil
}
