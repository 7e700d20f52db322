package handlers

import "github.com/abrezinsky/biztime/internal/models"

// CompanySummary is the list projection of a company
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyListResponse is the body of GET /companies
type CompanyListResponse struct {
	Companies []CompanySummary `json:"companies"`
}

// CompanyDetailResponse is the body of GET /companies/{code}
type CompanyDetailResponse struct {
	Company *models.CompanyDetail `json:"company"`
}

// CompanyResponse is the body of company writes
type CompanyResponse struct {
	Company *models.Company `json:"company"`
}

// InvoiceListResponse is the body of GET /invoices
type InvoiceListResponse struct {
	Invoices []models.InvoiceSummary `json:"invoices"`
}

// InvoiceDetailResponse is the body of GET /invoices/{id}
type InvoiceDetailResponse struct {
	Invoice *models.InvoiceDetail `json:"invoice"`
}

// InvoiceResponse is the body of invoice writes
type InvoiceResponse struct {
	Invoice *models.Invoice `json:"invoice"`
}

// StatusResponse is the body of deletes and health checks
type StatusResponse struct {
	Status string `json:"status"`
}
