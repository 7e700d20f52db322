package services

import (
	"context"
	"fmt"

	"github.com/abrezinsky/biztime/internal/logger"
	"github.com/abrezinsky/biztime/internal/models"
)

type seedInvoice struct {
	compCode string
	cents    int64
}

func strPtr(s string) *string { return &s }

var seedCompanies = []models.Company{
	{Code: "apple", Name: "Apple Computer", Description: strPtr("Maker of OSX.")},
	{Code: "ibm", Name: "IBM", Description: strPtr("Big blue.")},
	{Code: "mcd", Name: "McDonalds", Description: strPtr("fast food place")},
}

var seedInvoices = []seedInvoice{
	{"apple", 10000},
	{"apple", 20000},
	{"apple", 30000},
	{"ibm", 40000},
	{"mcd", 9999},
}

// SeedResult reports how many rows Seed inserted
type SeedResult struct {
	Companies int
	Invoices  int
}

// SeedService loads a small sample dataset through the regular services
type SeedService struct {
	log       logger.Logger
	companies CompanyServicer
	invoices  InvoiceServicer
}

// NewSeedService creates a new SeedService
func NewSeedService(log logger.Logger, companies CompanyServicer, invoices InvoiceServicer) *SeedService {
	return &SeedService{log: log, companies: companies, invoices: invoices}
}

// Seed inserts the sample companies and their invoices. It stops at the
// first failure, so running it twice reports the duplicate company.
func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	for _, c := range seedCompanies {
		if _, err := s.companies.CreateCompany(ctx, c); err != nil {
			return result, fmt.Errorf("seed company %s: %w", c.Code, err)
		}
		result.Companies++
	}

	for _, inv := range seedInvoices {
		if _, err := s.invoices.CreateInvoice(ctx, inv.compCode, models.NewAmountFromCents(inv.cents)); err != nil {
			return result, fmt.Errorf("seed invoice for %s: %w", inv.compCode, err)
		}
		result.Invoices++
	}

	s.log.Info("Seed complete", "companies", result.Companies, "invoices", result.Invoices)
	return result, nil
}
