package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository provides data access methods
type Repository struct {
	db      *sqlx.DB
	queries *Queries
}

// New opens the database at dbURL, applies the schema and returns a Repository
func New(dbURL string) (*Repository, error) {
	db, err := Open(dbURL)
	if err != nil {
		return nil, err
	}

	repo, err := NewWithDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// NewWithDB wraps an already-open connection and applies the schema
func NewWithDB(db *sqlx.DB) (*Repository, error) {
	repo, err := newRepository(db)
	if err != nil {
		return nil, err
	}

	if err := repo.migrate(); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return repo, nil
}

func newRepository(db *sqlx.DB) (*Repository, error) {
	queries, err := LoadQueries(db)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db, queries: queries}, nil
}

// DB returns the underlying database connection
func (r *Repository) DB() *sqlx.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate creates the tables if they do not exist yet
func (r *Repository) migrate() error {
	var statements []string
	switch r.db.DriverName() {
	case DriverPostgres:
		statements = postgresSchema
	default:
		statements = sqliteSchema
	}

	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		comp_code TEXT NOT NULL,
		amt NUMERIC(10,2) NOT NULL,
		paid BOOLEAN NOT NULL DEFAULT FALSE,
		add_date DATE NOT NULL DEFAULT CURRENT_DATE,
		paid_date DATE,
		FOREIGN KEY (comp_code) REFERENCES companies(code) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_comp_code ON invoices(comp_code)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id SERIAL PRIMARY KEY,
		comp_code TEXT NOT NULL REFERENCES companies(code) ON DELETE CASCADE,
		amt NUMERIC(10,2) NOT NULL,
		paid BOOLEAN NOT NULL DEFAULT FALSE,
		add_date DATE NOT NULL DEFAULT CURRENT_DATE,
		paid_date DATE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_comp_code ON invoices(comp_code)`,
}
