// AngelaMos | 2026
// handler.go

package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/resource"
)

type Handler struct {
	*resource.Handler[Payment, CreatePaymentRequest, UpdatePaymentRequest, ListPaymentsParams]
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		Handler: resource.New[Payment, CreatePaymentRequest, UpdatePaymentRequest, ListPaymentsParams](
			service,
			resource.Config[Payment, ListPaymentsParams]{
				Name:      "payment",
				Key:       "payment",
				ParseList: parseListParams,
				ID:        func(p *Payment) int64 { return p.ID },
			},
		),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payments", h.Routes)
}

func parseListParams(r *http.Request) (ListPaymentsParams, error) {
	companyID, err := core.QueryInt64(r, "companyId")
	if err != nil {
		return ListPaymentsParams{}, err
	}
	invoiceID, err := core.QueryInt64(r, "invoiceId")
	if err != nil {
		return ListPaymentsParams{}, err
	}

	return ListPaymentsParams{
		ListParams: core.ParseListParams(r),
		CompanyID:  companyID,
		InvoiceID:  invoiceID,
		Method:     core.QueryString(r, "method"),
	}, nil
}
