package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/abrezinsky/biztime/internal/errors"
	"github.com/abrezinsky/biztime/internal/logger"
	"github.com/abrezinsky/biztime/internal/models"
	"github.com/abrezinsky/biztime/internal/repository"
)

// InvoiceServiceRepository defines the repository methods needed by InvoiceService
type InvoiceServiceRepository interface {
	repository.InvoiceRepository
	GetCompany(ctx context.Context, code string) (*models.Company, error)
}

// InvoiceService handles invoice-related operations
type InvoiceService struct {
	log  logger.Logger
	repo InvoiceServiceRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(log logger.Logger, repo InvoiceServiceRepository) *InvoiceService {
	return &InvoiceService{log: log, repo: repo}
}

// ListInvoices returns all invoices as {id, comp_code}
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]models.InvoiceSummary, error) {
	return s.repo.ListInvoices(ctx)
}

// GetInvoice returns an invoice with its owning company attached
func (s *InvoiceService) GetInvoice(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	invoice, err := s.repo.GetInvoice(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFoundf("Invoice of id %d not found.", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice %d: %w", id, err)
	}

	detail := &models.InvoiceDetail{Invoice: *invoice}

	company, err := s.repo.GetCompany(ctx, invoice.CompCode)
	switch {
	case stderrors.Is(err, repository.ErrNotFound):
		// The foreign key makes this unreachable on a constrained store.
		s.log.Warn("Invoice references missing company", "id", id, "comp_code", invoice.CompCode)
	case err != nil:
		return nil, fmt.Errorf("get company %s for invoice %d: %w", invoice.CompCode, id, err)
	default:
		detail.Company = company
	}

	return detail, nil
}

// CreateInvoice bills amt to the company compCode
func (s *InvoiceService) CreateInvoice(ctx context.Context, compCode string, amt models.Amount) (*models.Invoice, error) {
	if compCode == "" {
		return nil, ErrCompCodeRequired
	}

	invoice, err := s.repo.CreateInvoice(ctx, compCode, amt)
	if err != nil {
		return nil, fmt.Errorf("create invoice for %s: %w", compCode, err)
	}

	s.log.Info("Invoice created", "id", invoice.ID, "comp_code", invoice.CompCode, "amt", invoice.Amt.String())
	return invoice, nil
}

// UpdateInvoiceAmount changes only the amount of an invoice
func (s *InvoiceService) UpdateInvoiceAmount(ctx context.Context, id int64, amt models.Amount) (*models.Invoice, error) {
	if amt.IsZero() {
		return nil, ErrAmountRequired
	}

	invoice, err := s.repo.UpdateInvoiceAmount(ctx, id, amt)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFoundf("Invoice of id %d not found.", id)
	}
	if err != nil {
		return nil, fmt.Errorf("update invoice %d: %w", id, err)
	}

	s.log.Info("Invoice updated", "id", invoice.ID, "amt", invoice.Amt.String())
	return invoice, nil
}

// DeleteInvoice removes an invoice
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	err := s.repo.DeleteInvoice(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NotFoundf("%d not found.", id)
	}
	if err != nil {
		return fmt.Errorf("delete invoice %d: %w", id, err)
	}

	s.log.Info("Invoice deleted", "id", id)
	return nil
}
