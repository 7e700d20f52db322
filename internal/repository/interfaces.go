package repository

import (
	"context"

	"github.com/abrezinsky/biztime/internal/models"
)

// CompanyRepository defines company data operations
type CompanyRepository interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, code string) (*models.Company, error)
	ListInvoiceIDs(ctx context.Context, compCode string) ([]int64, error)
	CreateCompany(ctx context.Context, company models.Company) (*models.Company, error)
	UpdateCompany(ctx context.Context, company models.Company) (*models.Company, error)
	DeleteCompany(ctx context.Context, code string) error
}

// InvoiceRepository defines invoice data operations
type InvoiceRepository interface {
	ListInvoices(ctx context.Context) ([]models.InvoiceSummary, error)
	GetInvoice(ctx context.Context, id int64) (*models.Invoice, error)
	CreateInvoice(ctx context.Context, compCode string, amt models.Amount) (*models.Invoice, error)
	UpdateInvoiceAmount(ctx context.Context, id int64, amt models.Amount) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

// HealthRepository reports store connectivity
type HealthRepository interface {
	Ping(ctx context.Context) error
}

// FullRepository combines all repository interfaces
// Use this when a service needs access to multiple domains
type FullRepository interface {
	CompanyRepository
	InvoiceRepository
	HealthRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
