package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abrezinsky/biztime/internal/models"
)

// ListCompanies returns all companies ordered by name
func (r *Repository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies := []models.Company{}
	if err := r.queries.Select(ctx, "list-companies", &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// GetCompany returns the company with the given code
func (r *Repository) GetCompany(ctx context.Context, code string) (*models.Company, error) {
	var company models.Company
	err := r.queries.Get(ctx, "get-company", &company, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// ListInvoiceIDs returns the ids of all invoices billed to a company
func (r *Repository) ListInvoiceIDs(ctx context.Context, compCode string) ([]int64, error) {
	ids := []int64{}
	if err := r.queries.Select(ctx, "list-company-invoice-ids", &ids, compCode); err != nil {
		return nil, err
	}
	return ids, nil
}

// CreateCompany inserts a company and returns the stored row
func (r *Repository) CreateCompany(ctx context.Context, company models.Company) (*models.Company, error) {
	var created models.Company
	if err := r.queries.Get(ctx, "create-company", &created, company.Code, company.Name, company.Description); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCompany overwrites name and description of the company with company.Code
func (r *Repository) UpdateCompany(ctx context.Context, company models.Company) (*models.Company, error) {
	var updated models.Company
	err := r.queries.Get(ctx, "update-company", &updated, company.Name, company.Description, company.Code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCompany deletes a company; its invoices are removed by the cascade
func (r *Repository) DeleteCompany(ctx context.Context, code string) error {
	result, err := r.queries.Exec(ctx, "delete-company", code)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
