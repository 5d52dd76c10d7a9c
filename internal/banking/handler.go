// AngelaMos | 2026
// handler.go

package banking

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/resource"
)

type Handler struct {
	*resource.Handler[Transaction, CreateTransactionRequest, UpdateTransactionRequest, ListTransactionsParams]
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		Handler: resource.New[Transaction, CreateTransactionRequest, UpdateTransactionRequest, ListTransactionsParams](
			service,
			resource.Config[Transaction, ListTransactionsParams]{
				Name:      "bank transaction",
				Key:       "bankTransaction",
				ParseList: parseListParams,
				ID:        func(tx *Transaction) int64 { return tx.ID },
			},
		),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/bank-transactions", h.Routes)
}

func parseListParams(r *http.Request) (ListTransactionsParams, error) {
	companyID, err := core.QueryInt64(r, "companyId")
	if err != nil {
		return ListTransactionsParams{}, err
	}
	paymentID, err := core.QueryInt64(r, "paymentId")
	if err != nil {
		return ListTransactionsParams{}, err
	}

	params := ListTransactionsParams{
		ListParams: core.ParseListParams(r),
		CompanyID:  companyID,
		PaymentID:  paymentID,
	}

	if raw := core.QueryString(r, "matched"); raw != "" {
		matched, err := strconv.ParseBool(raw)
		if err != nil {
			return ListTransactionsParams{}, core.BadRequestError(
				"INVALID_MATCHED", "matched must be true or false",
			)
		}
		params.Matched = &matched
	}

	return params, nil
}
