// AngelaMos | 2026
// service.go

package banking

import (
	"context"
	"errors"
	"fmt"

	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, scope tenant.Scope, params ListTransactionsParams) ([]Transaction, error) {
	return s.repo.List(ctx, scope.UserID, params)
}

func (s *Service) Get(ctx context.Context, scope tenant.Scope, id int64) (*Transaction, error) {
	return s.repo.GetByID(ctx, scope.UserID, id)
}

func (s *Service) Create(ctx context.Context, scope tenant.Scope, req CreateTransactionRequest) (*Transaction, error) {
	if req.TransactionDate.IsZero() {
		return nil, core.BadRequestError("MISSING_TRANSACTION_DATE", "transactionDate is required")
	}

	tx := &Transaction{
		CompanyID:       scope.CompanyOrDefault(req.CompanyID),
		TransactionDate: *req.TransactionDate,
		Amount:          req.Amount.Decimal,
	}
	req.apply(tx)

	if req.PaymentID != nil {
		if err := s.checkPayment(ctx, scope, tx.CompanyID, *req.PaymentID); err != nil {
			return nil, err
		}
		tx.PaymentID = req.PaymentID
	}

	if err := s.repo.Create(ctx, scope.UserID, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *Service) Update(
	ctx context.Context,
	scope tenant.Scope,
	id int64,
	req UpdateTransactionRequest,
) (*Transaction, error) {
	tx, err := s.repo.GetByID(ctx, scope.UserID, id)
	if err != nil {
		return nil, err
	}

	if req.TransactionDate != nil && !req.TransactionDate.IsZero() {
		tx.TransactionDate = *req.TransactionDate
	}
	tx.Amount = core.Dec(req.Amount, tx.Amount)
	req.apply(tx)

	if req.PaymentID.Set {
		paymentID := req.PaymentID.Ptr()
		if paymentID != nil {
			if err := s.checkPayment(ctx, scope, tx.CompanyID, *paymentID); err != nil {
				return nil, err
			}
		}
		tx.PaymentID = paymentID
	}

	if err := s.repo.Update(ctx, scope.UserID, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *Service) Delete(ctx context.Context, scope tenant.Scope, id int64) (*Transaction, error) {
	return s.repo.Delete(ctx, scope.UserID, id)
}

// checkPayment requires the matched payment to belong to companyID.
func (s *Service) checkPayment(ctx context.Context, scope tenant.Scope, companyID, paymentID int64) error {
	paymentCompany, err := s.repo.PaymentCompany(ctx, scope.UserID, paymentID)
	if errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("payment %d: %w", paymentID, core.NotFoundError("payment"))
	}
	if err != nil {
		return err
	}
	if paymentCompany != companyID {
		return core.BadRequestError(
			"INVALID_PAYMENT_ID",
			"payment belongs to a different company",
		)
	}
	return nil
}
