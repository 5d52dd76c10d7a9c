// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/events"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

var errNonPositive = core.NewAppError(
	core.ErrInvalidAmount,
	"amount must be greater than zero",
	http.StatusBadRequest,
	"INVALID_AMOUNT",
)

type Event struct {
	ID        int64           `json:"id"`
	InvoiceID int64           `json:"invoiceId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
}

type Service struct {
	repo      Repository
	publisher events.Publisher
}

func NewService(repo Repository, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{repo: repo, publisher: publisher}
}

func (s *Service) List(ctx context.Context, scope tenant.Scope, params ListPaymentsParams) ([]Payment, error) {
	return s.repo.List(ctx, scope.UserID, params)
}

func (s *Service) Get(ctx context.Context, scope tenant.Scope, id int64) (*Payment, error) {
	return s.repo.GetByID(ctx, scope.UserID, id)
}

func (s *Service) Create(ctx context.Context, scope tenant.Scope, req CreatePaymentRequest) (*Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, errNonPositive
	}
	if req.PaymentDate.IsZero() {
		return nil, core.BadRequestError("MISSING_PAYMENT_DATE", "paymentDate is required")
	}

	companyID, err := s.repo.InvoiceCompany(ctx, scope.UserID, *req.InvoiceID)
	if errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("invoice %d: %w", *req.InvoiceID, core.NotFoundError("invoice"))
	}
	if err != nil {
		return nil, err
	}
	if req.CompanyID != nil && *req.CompanyID != companyID {
		return nil, core.BadRequestError(
			"INVALID_COMPANY_ID",
			"companyId does not match the invoice's company",
		)
	}

	p := &Payment{
		CompanyID:   companyID,
		InvoiceID:   *req.InvoiceID,
		Amount:      req.Amount.Decimal,
		PaymentDate: *req.PaymentDate,
		Method:      MethodCash,
	}
	if req.Method != "" {
		p.Method = req.Method
	}
	req.apply(p)

	if err := s.repo.Create(ctx, scope.UserID, p); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.PaymentRecorded, p.CompanyID, eventOf(p))
	return p, nil
}

func (s *Service) Update(
	ctx context.Context,
	scope tenant.Scope,
	id int64,
	req UpdatePaymentRequest,
) (*Payment, error) {
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, errNonPositive
	}

	p, err := s.repo.GetByID(ctx, scope.UserID, id)
	if err != nil {
		return nil, err
	}

	p.Amount = core.Dec(req.Amount, p.Amount)
	if req.PaymentDate != nil && !req.PaymentDate.IsZero() {
		p.PaymentDate = *req.PaymentDate
	}
	if req.Method != nil {
		p.Method = *req.Method
	}
	req.apply(p)

	if err := s.repo.Update(ctx, scope.UserID, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, scope tenant.Scope, id int64) (*Payment, error) {
	p, err := s.repo.Delete(ctx, scope.UserID, id)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.PaymentDeleted, p.CompanyID, eventOf(p))
	return p, nil
}

func eventOf(p *Payment) Event {
	return Event{ID: p.ID, InvoiceID: p.InvoiceID, Amount: p.Amount, Method: p.Method}
}
