package mock

import (
	"context"

	"github.com/abrezinsky/biztime/internal/models"
	"github.com/abrezinsky/biztime/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.ListInvoiceIDsError = errors.New("database error")
//	svc := services.NewCompanyService(log, mockRepo)
//	_, err := svc.GetCompany(ctx, "mcd")
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== Company Errors =====
	ListCompaniesError  error
	GetCompanyError     error
	ListInvoiceIDsError error
	CreateCompanyError  error
	UpdateCompanyError  error
	DeleteCompanyError  error

	// ===== Invoice Errors =====
	ListInvoicesError        error
	GetInvoiceError          error
	CreateInvoiceError       error
	UpdateInvoiceAmountError error
	DeleteInvoiceError       error

	// ===== Health Errors =====
	PingError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

// ===== Company Methods =====

func (m *Repository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	if m.ListCompaniesError != nil {
		return nil, m.ListCompaniesError
	}
	return m.FullRepository.ListCompanies(ctx)
}

func (m *Repository) GetCompany(ctx context.Context, code string) (*models.Company, error) {
	if m.GetCompanyError != nil {
		return nil, m.GetCompanyError
	}
	return m.FullRepository.GetCompany(ctx, code)
}

func (m *Repository) ListInvoiceIDs(ctx context.Context, compCode string) ([]int64, error) {
	if m.ListInvoiceIDsError != nil {
		return nil, m.ListInvoiceIDsError
	}
	return m.FullRepository.ListInvoiceIDs(ctx, compCode)
}

func (m *Repository) CreateCompany(ctx context.Context, company models.Company) (*models.Company, error) {
	if m.CreateCompanyError != nil {
		return nil, m.CreateCompanyError
	}
	return m.FullRepository.CreateCompany(ctx, company)
}

func (m *Repository) UpdateCompany(ctx context.Context, company models.Company) (*models.Company, error) {
	if m.UpdateCompanyError != nil {
		return nil, m.UpdateCompanyError
	}
	return m.FullRepository.UpdateCompany(ctx, company)
}

func (m *Repository) DeleteCompany(ctx context.Context, code string) error {
	if m.DeleteCompanyError != nil {
		return m.DeleteCompanyError
	}
	return m.FullRepository.DeleteCompany(ctx, code)
}

// ===== Invoice Methods =====

func (m *Repository) ListInvoices(ctx context.Context) ([]models.InvoiceSummary, error) {
	if m.ListInvoicesError != nil {
		return nil, m.ListInvoicesError
	}
	return m.FullRepository.ListInvoices(ctx)
}

func (m *Repository) GetInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	if m.GetInvoiceError != nil {
		return nil, m.GetInvoiceError
	}
	return m.FullRepository.GetInvoice(ctx, id)
}

func (m *Repository) CreateInvoice(ctx context.Context, compCode string, amt models.Amount) (*models.Invoice, error) {
	if m.CreateInvoiceError != nil {
		return nil, m.CreateInvoiceError
	}
	return m.FullRepository.CreateInvoice(ctx, compCode, amt)
}

func (m *Repository) UpdateInvoiceAmount(ctx context.Context, id int64, amt models.Amount) (*models.Invoice, error) {
	if m.UpdateInvoiceAmountError != nil {
		return nil, m.UpdateInvoiceAmountError
	}
	return m.FullRepository.UpdateInvoiceAmount(ctx, id, amt)
}

func (m *Repository) DeleteInvoice(ctx context.Context, id int64) error {
	if m.DeleteInvoiceError != nil {
		return m.DeleteInvoiceError
	}
	return m.FullRepository.DeleteInvoice(ctx, id)
}

// ===== Health Methods =====

func (m *Repository) Ping(ctx context.Context) error {
	if m.PingError != nil {
		return m.PingError
	}
	return m.FullRepository.Ping(ctx)
}
