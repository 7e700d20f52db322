package handlers

import "github.com/abrezinsky/biztime/internal/models"

// CompanyCreateRequest represents a request to create a company
type CompanyCreateRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CompanyUpdateRequest represents a request to update a company
type CompanyUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// InvoiceCreateRequest represents a request to create an invoice
type InvoiceCreateRequest struct {
	CompCode *string        `json:"comp_code"`
	Amt      *models.Amount `json:"amt"`
}

// InvoiceUpdateRequest represents a request to change an invoice amount
type InvoiceUpdateRequest struct {
	Amt *models.Amount `json:"amt"`
}
