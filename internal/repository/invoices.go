package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abrezinsky/biztime/internal/models"
)

// ListInvoices returns every invoice as {id, comp_code}, ordered by company
func (r *Repository) ListInvoices(ctx context.Context) ([]models.InvoiceSummary, error) {
	invoices := []models.InvoiceSummary{}
	if err := r.queries.Select(ctx, "list-invoices", &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice returns the invoice with the given id
func (r *Repository) GetInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.queries.Get(ctx, "get-invoice", &invoice, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// CreateInvoice inserts an unpaid invoice dated today
func (r *Repository) CreateInvoice(ctx context.Context, compCode string, amt models.Amount) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.queries.Get(ctx, "create-invoice", &invoice, compCode, amt); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoiceAmount sets the amount of an invoice and returns the stored row
func (r *Repository) UpdateInvoiceAmount(ctx context.Context, id int64, amt models.Amount) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.queries.Get(ctx, "update-invoice-amount", &invoice, amt, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// DeleteInvoice deletes an invoice
func (r *Repository) DeleteInvoice(ctx context.Context, id int64) error {
	result, err := r.queries.Exec(ctx, "delete-invoice", id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}
