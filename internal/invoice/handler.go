// AngelaMos | 2026
// handler.go

package invoice

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/resource"
)

type Handler struct {
	*resource.Handler[Invoice, CreateInvoiceRequest, UpdateInvoiceRequest, ListInvoicesParams]
	path string
}

// NewHandler serves standard invoices at /invoices and tax invoices at
// /tax-invoices, depending on the kind the service was built for.
func NewHandler(service *Service) *Handler {
	name, key, path := "invoice", "invoice", "/invoices"
	if service.kind == KindTax {
		name, key, path = "tax invoice", "taxInvoice", "/tax-invoices"
	}

	return &Handler{
		Handler: resource.New[Invoice, CreateInvoiceRequest, UpdateInvoiceRequest, ListInvoicesParams](
			service,
			resource.Config[Invoice, ListInvoicesParams]{
				Name:      name,
				Key:       key,
				ParseList: parseListParams,
				ID:        func(inv *Invoice) int64 { return inv.ID },
			},
		),
		path: path,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route(h.path, h.Routes)
}

func parseListParams(r *http.Request) (ListInvoicesParams, error) {
	companyID, err := core.QueryInt64(r, "companyId")
	if err != nil {
		return ListInvoicesParams{}, err
	}
	clientID, err := core.QueryInt64(r, "clientId")
	if err != nil {
		return ListInvoicesParams{}, err
	}

	return ListInvoicesParams{
		ListParams: core.ParseListParams(r),
		CompanyID:  companyID,
		ClientID:   clientID,
		Status:     core.QueryString(r, "status"),
	}, nil
}
