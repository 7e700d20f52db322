package models

// Company represents a row in the companies table
type Company struct {
	Code        string  `db:"code" json:"code"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

// CompanyDetail is a company together with the ids of its invoices
type CompanyDetail struct {
	Company
	Invoices []int64 `json:"invoices"`
}

// Invoice represents a row in the invoices table
type Invoice struct {
	ID       int64  `db:"id" json:"id"`
	CompCode string `db:"comp_code" json:"comp_code"`
	Amt      Amount `db:"amt" json:"amt"`
	Paid     bool   `db:"paid" json:"paid"`
	AddDate  Date   `db:"add_date" json:"add_date"`
	PaidDate Date   `db:"paid_date" json:"paid_date"`
}

// InvoiceSummary is the list projection of an invoice
type InvoiceSummary struct {
	ID       int64  `db:"id" json:"id"`
	CompCode string `db:"comp_code" json:"comp_code"`
}

// InvoiceDetail is an invoice with its owning company attached
type InvoiceDetail struct {
	Invoice
	Company *Company `json:"company"`
}
