// AngelaMos | 2026
// service.go

package quotation

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aurex-pk/aurex-api/internal/company"
	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/document"
	"github.com/aurex-pk/aurex-api/internal/events"
	"github.com/aurex-pk/aurex-api/internal/invoice"
	"github.com/aurex-pk/aurex-api/internal/tenant"
)

var ErrAlreadyConverted = core.NewAppError(
	core.ErrInvalidInput,
	"quotation has already been converted to an invoice",
	http.StatusBadRequest,
	"QUOTATION_ALREADY_CONVERTED",
)

type Service struct {
	repo      Repository
	publisher events.Publisher
	now       func() time.Time
}

func NewService(repo Repository, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{repo: repo, publisher: publisher, now: time.Now}
}

func (s *Service) List(ctx context.Context, scope tenant.Scope, params ListQuotationsParams) ([]Quotation, error) {
	return s.repo.List(ctx, scope.UserID, params)
}

func (s *Service) Get(ctx context.Context, scope tenant.Scope, id int64) (*Quotation, error) {
	return s.repo.GetByID(ctx, scope.UserID, id)
}

func (s *Service) Create(ctx context.Context, scope tenant.Scope, req CreateQuotationRequest) (*Quotation, error) {
	if err := document.RequireDate(req.IssueDate, "issueDate"); err != nil {
		return nil, err
	}

	lines, err := document.Lines(req.Lines)
	if err != nil {
		return nil, err
	}

	createdBy := scope.UserID
	q := &Quotation{
		CompanyID:       scope.CompanyOrDefault(req.CompanyID),
		ClientID:        *req.ClientID,
		QuotationNumber: req.QuotationNumber,
		IssueDate:       *req.IssueDate,
		Status:          StatusDraft,
		Currency:        company.DefaultCurrency,
		CreatedBy:       &createdBy,
		Lines:           lines,
	}
	if req.Status != "" {
		q.Status = req.Status
	}
	req.apply(q)

	if err := s.repo.CheckParties(ctx, scope.UserID, document.Parties{
		CompanyID: q.CompanyID,
		ClientID:  q.ClientID,
		ItemIDs:   document.ItemIDs(lines),
	}); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, scope.UserID, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) Update(
	ctx context.Context,
	scope tenant.Scope,
	id int64,
	req UpdateQuotationRequest,
) (*Quotation, error) {
	if req.IssueDate != nil {
		if err := document.RequireDate(req.IssueDate, "issueDate"); err != nil {
			return nil, err
		}
	}

	lines, err := document.Lines(req.Lines)
	if err != nil {
		return nil, err
	}

	q, err := s.repo.GetByID(ctx, scope.UserID, id)
	if err != nil {
		return nil, err
	}

	clientChanged := req.ClientID != nil && *req.ClientID != q.ClientID
	if clientChanged || req.Lines != nil {
		parties := document.Parties{
			CompanyID: q.CompanyID,
			ClientID:  q.ClientID,
			ItemIDs:   document.ItemIDs(lines),
		}
		if clientChanged {
			parties.ClientID = *req.ClientID
		}
		if err := s.repo.CheckParties(ctx, scope.UserID, parties); err != nil {
			return nil, err
		}
		q.ClientID = parties.ClientID
	}
	if req.QuotationNumber != nil {
		q.QuotationNumber = *req.QuotationNumber
	}
	if req.IssueDate != nil {
		q.IssueDate = *req.IssueDate
	}
	if req.Status != nil {
		q.Status = *req.Status
	}
	req.apply(q)

	replace := req.Lines != nil
	if replace {
		q.Lines = lines
	}

	if err := s.repo.Update(ctx, scope.UserID, q, replace); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) Delete(ctx context.Context, scope tenant.Scope, id int64) (*Quotation, error) {
	return s.repo.Delete(ctx, scope.UserID, id)
}

// Convert copies the quotation header and lines into a new standard invoice.
func (s *Service) Convert(ctx context.Context, scope tenant.Scope, id int64, req ConvertRequest) (*Conversion, error) {
	issueDate := core.NewDate(s.now().Date())
	if req.IssueDate != nil && !req.IssueDate.IsZero() {
		issueDate = *req.IssueDate
	}

	conv, err := s.repo.Convert(ctx, scope.UserID, id, func(q *Quotation) (*invoice.Invoice, error) {
		if q.ConvertedInvoiceID != nil {
			return nil, fmt.Errorf("convert quotation %d: %w", q.ID, ErrAlreadyConverted)
		}
		return toInvoice(q, req, issueDate, scope.UserID), nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.QuotationConverted, conv.Quotation.CompanyID, map[string]any{
		"quotationId":   conv.Quotation.ID,
		"invoiceId":     conv.Invoice.ID,
		"invoiceNumber": conv.Invoice.InvoiceNumber,
	})
	return conv, nil
}

func toInvoice(q *Quotation, req ConvertRequest, issueDate core.Date, userID int64) *invoice.Invoice {
	inv := &invoice.Invoice{
		Kind:          invoice.KindStandard,
		CompanyID:     q.CompanyID,
		ClientID:      q.ClientID,
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     issueDate,
		Status:        invoice.StatusDraft,
		Amounts:       q.Amounts,
		Currency:      q.Currency,
		Notes:         q.Notes,
		Terms:         q.Terms,
		CreatedBy:     &userID,
	}
	if req.DueDate != nil && !req.DueDate.IsZero() {
		inv.DueDate = req.DueDate
	}

	inv.Lines = make([]document.Line, 0, len(q.Lines))
	for _, line := range q.Lines {
		line.ID = 0
		line.DocumentID = 0
		inv.Lines = append(inv.Lines, line)
	}
	return inv
}
