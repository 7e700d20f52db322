package repository

import "errors"

// ErrNotFound is returned when a requested record is not found in the repository.
// This abstracts away the underlying storage implementation from the service layer.
var ErrNotFound = errors.New("record not found")

// ErrUnsupportedDatabase is returned by Open for URLs it cannot map to a driver.
var ErrUnsupportedDatabase = errors.New("unsupported database URL")
