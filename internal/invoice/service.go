// AngelaMos | 2026
// service.go

package invoice

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/aurex-pk/aurex-api/internal/company"
	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/document"
	"github.com/aurex-pk/aurex-api/internal/events"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

var ErrHasPayments = core.NewAppError(
	core.ErrForeignKey,
	"invoice still has payments recorded against it",
	http.StatusBadRequest,
	"INVOICE_HAS_PAYMENTS",
)

// Event is the payload of invoice events.
type Event struct {
	ID            int64           `json:"id"`
	Kind          Kind            `json:"kind"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientID      int64           `json:"clientId"`
	Total         decimal.Decimal `json:"total"`
}

func eventOf(inv *Invoice) Event {
	return Event{
		ID:            inv.ID,
		Kind:          inv.Kind,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		Total:         inv.Total,
	}
}

// Service serves one invoice kind.
type Service struct {
	repo      Repository
	kind      Kind
	publisher events.Publisher
}

func NewService(repo Repository, kind Kind, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{repo: repo, kind: kind, publisher: publisher}
}

func (s *Service) List(ctx context.Context, scope tenant.Scope, params ListInvoicesParams) ([]Invoice, error) {
	return s.repo.List(ctx, scope.UserID, s.kind, params)
}

func (s *Service) Get(ctx context.Context, scope tenant.Scope, id int64) (*Invoice, error) {
	return s.repo.GetByID(ctx, scope.UserID, s.kind, id)
}

func (s *Service) Create(ctx context.Context, scope tenant.Scope, req CreateInvoiceRequest) (*Invoice, error) {
	if err := document.RequireDate(req.IssueDate, "issueDate"); err != nil {
		return nil, err
	}

	lines, err := document.Lines(req.Lines)
	if err != nil {
		return nil, err
	}

	createdBy := scope.UserID
	inv := &Invoice{
		Kind:          s.kind,
		CompanyID:     *req.CompanyID,
		ClientID:      *req.ClientID,
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     *req.IssueDate,
		Status:        StatusDraft,
		Currency:      company.DefaultCurrency,
		CreatedBy:     &createdBy,
		Lines:         lines,
	}
	if req.Status != "" {
		inv.Status = req.Status
	}
	req.apply(inv)

	if err := s.repo.CheckParties(ctx, scope.UserID, document.Parties{
		CompanyID: inv.CompanyID,
		ClientID:  inv.ClientID,
		ItemIDs:   document.ItemIDs(lines),
	}); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, scope.UserID, inv); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.InvoiceCreated, inv.CompanyID, eventOf(inv))
	return inv, nil
}

func (s *Service) Update(
	ctx context.Context,
	scope tenant.Scope,
	id int64,
	req UpdateInvoiceRequest,
) (*Invoice, error) {
	if req.IssueDate != nil {
		if err := document.RequireDate(req.IssueDate, "issueDate"); err != nil {
			return nil, err
		}
	}

	lines, err := document.Lines(req.Lines)
	if err != nil {
		return nil, err
	}

	inv, err := s.repo.GetByID(ctx, scope.UserID, s.kind, id)
	if err != nil {
		return nil, err
	}

	clientChanged := req.ClientID != nil && *req.ClientID != inv.ClientID
	if clientChanged || req.Lines != nil {
		parties := document.Parties{
			CompanyID: inv.CompanyID,
			ClientID:  inv.ClientID,
			ItemIDs:   document.ItemIDs(lines),
		}
		if clientChanged {
			parties.ClientID = *req.ClientID
		}
		if err := s.repo.CheckParties(ctx, scope.UserID, parties); err != nil {
			return nil, err
		}
		inv.ClientID = parties.ClientID
	}
	if req.InvoiceNumber != nil {
		inv.InvoiceNumber = *req.InvoiceNumber
	}
	if req.IssueDate != nil {
		inv.IssueDate = *req.IssueDate
	}
	if req.Status != nil {
		inv.Status = *req.Status
	}
	req.apply(inv)

	replace := req.Lines != nil
	if replace {
		inv.Lines = lines
	}

	if err := s.repo.Update(ctx, scope.UserID, inv, replace); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) Delete(ctx context.Context, scope tenant.Scope, id int64) (*Invoice, error) {
	inv, err := s.repo.Delete(ctx, scope.UserID, s.kind, id)
	if errors.Is(err, core.ErrForeignKey) {
		return nil, fmt.Errorf("delete invoice %d: %w", id, ErrHasPayments)
	}
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.InvoiceDeleted, inv.CompanyID, eventOf(inv))
	return inv, nil
}
