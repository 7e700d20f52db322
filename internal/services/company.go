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

// CompanyService handles company-related operations
type CompanyService struct {
	log  logger.Logger
	repo repository.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(log logger.Logger, repo repository.CompanyRepository) *CompanyService {
	return &CompanyService{log: log, repo: repo}
}

// ListCompanies returns all companies ordered by name
func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return s.repo.ListCompanies(ctx)
}

// GetCompany returns a company together with the ids of its invoices
func (s *CompanyService) GetCompany(ctx context.Context, code string) (*models.CompanyDetail, error) {
	company, err := s.repo.GetCompany(ctx, code)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("Company not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("get company %s: %w", code, err)
	}

	ids, err := s.repo.ListInvoiceIDs(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("list invoices for %s: %w", code, err)
	}

	return &models.CompanyDetail{Company: *company, Invoices: ids}, nil
}

// CreateCompany inserts a new company. Duplicate codes are rejected by the store.
func (s *CompanyService) CreateCompany(ctx context.Context, company models.Company) (*models.Company, error) {
	if company.Code == "" {
		return nil, ErrCodeRequired
	}
	if company.Name == "" {
		return nil, ErrNameRequired
	}

	created, err := s.repo.CreateCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("create company %s: %w", company.Code, err)
	}

	s.log.Info("Company created", "code", created.Code)
	return created, nil
}

// UpdateCompany replaces the name and description of an existing company
func (s *CompanyService) UpdateCompany(ctx context.Context, company models.Company) (*models.Company, error) {
	if company.Name == "" {
		return nil, ErrNameRequired
	}

	updated, err := s.repo.UpdateCompany(ctx, company)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFoundf("%s not found.", company.Code)
	}
	if err != nil {
		return nil, fmt.Errorf("update company %s: %w", company.Code, err)
	}

	s.log.Info("Company updated", "code", updated.Code)
	return updated, nil
}

// DeleteCompany removes a company and, through the store's cascade, its invoices
func (s *CompanyService) DeleteCompany(ctx context.Context, code string) error {
	err := s.repo.DeleteCompany(ctx, code)
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NotFoundf("%s not found.", code)
	}
	if err != nil {
		return fmt.Errorf("delete company %s: %w", code, err)
	}

	s.log.Info("Company deleted", "code", code)
	return nil
}
