// AngelaMos | 2026
// handler.go

package quotation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/resource"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Handler struct {
	*resource.Handler[Quotation, CreateQuotationRequest, UpdateQuotationRequest, ListQuotationsParams]
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		Handler: resource.New[Quotation, CreateQuotationRequest, UpdateQuotationRequest, ListQuotationsParams](
			service,
			resource.Config[Quotation, ListQuotationsParams]{
				Name:      "quotation",
				Key:       "quotation",
				ParseList: parseListParams,
				ID:        func(q *Quotation) int64 { return q.ID },
			},
		),
		service: service,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/quotations", func(r chi.Router) {
		h.Routes(r)
		r.Post("/convert", h.Convert)
	})
}

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.Current(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}

	id, err := core.ParseID(r)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req ConvertRequest
	if err := core.Bind(r, h.Validator(), &req); err != nil {
		core.JSONError(w, err)
		return
	}

	conv, err := h.service.Convert(r.Context(), scope, id, req)
	if err != nil {
		core.RespondError(w, err, "quotation")
		return
	}

	core.Created(w, conv)
}

func parseListParams(r *http.Request) (ListQuotationsParams, error) {
	companyID, err := core.QueryInt64(r, "companyId")
	if err != nil {
		return ListQuotationsParams{}, err
	}
	clientID, err := core.QueryInt64(r, "clientId")
	if err != nil {
		return ListQuotationsParams{}, err
	}

	return ListQuotationsParams{
		ListParams: core.ParseListParams(r),
		CompanyID:  companyID,
		ClientID:   clientID,
		Status:     core.QueryString(r, "status"),
	}, nil
}
