package services

import (
	"context"

	"github.com/abrezinsky/biztime/internal/models"
)

// CompanyServicer defines the interface for company operations
type CompanyServicer interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, code string) (*models.CompanyDetail, error)
	CreateCompany(ctx context.Context, company models.Company) (*models.Company, error)
	UpdateCompany(ctx context.Context, company models.Company) (*models.Company, error)
	DeleteCompany(ctx context.Context, code string) error
}

// InvoiceServicer defines the interface for invoice operations
type InvoiceServicer interface {
	ListInvoices(ctx context.Context) ([]models.InvoiceSummary, error)
	GetInvoice(ctx context.Context, id int64) (*models.InvoiceDetail, error)
	CreateInvoice(ctx context.Context, compCode string, amt models.Amount) (*models.Invoice, error)
	UpdateInvoiceAmount(ctx context.Context, id int64, amt models.Amount) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

// HealthServicer defines the interface for readiness checks
type HealthServicer interface {
	Check(ctx context.Context) error
}

// Ensure concrete types implement interfaces
var (
	_ CompanyServicer = (*CompanyService)(nil)
	_ InvoiceServicer = (*InvoiceService)(nil)
	_ HealthServicer  = (*HealthService)(nil)
)
