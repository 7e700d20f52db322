package services

import "github.com/abrezinsky/biztime/internal/errors"

// Service errors
var (
	ErrCodeRequired     = errors.BadRequest("code is required")
	ErrNameRequired     = errors.BadRequest("name is required")
	ErrCompCodeRequired = errors.BadRequest("comp_code is required")
	ErrAmountRequired   = errors.BadRequest("Amount not provided for invoicing.")
)
