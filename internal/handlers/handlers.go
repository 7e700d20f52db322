package handlers

import (
	"time"

	"github.com/abrezinsky/biztime/internal/services"
)

// DefaultRequestTimeout bounds a request when no timeout is configured
const DefaultRequestTimeout = 60 * time.Second

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Company        services.CompanyServicer
	Invoice        services.InvoiceServicer
	Health         services.HealthServicer
	Log            Logger
	RequestTimeout time.Duration
}

// Logger is the logging surface handlers need: error reporting and the
// HTTP access log toggle.
type Logger interface {
	Error(msg string, args ...any)
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	company services.CompanyServicer,
	invoice services.InvoiceServicer,
	health services.HealthServicer,
	log Logger,
	requestTimeout time.Duration,
) *Handlers {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	return &Handlers{
		Company:        company,
		Invoice:        invoice,
		Health:         health,
		Log:            log,
		RequestTimeout: requestTimeout,
	}
}

// NoopLogger is a test logger that discards errors and never logs HTTP requests
type NoopLogger struct{}

func (NoopLogger) Error(string, ...any)       {}
func (NoopLogger) IsHTTPLoggingEnabled() bool { return false }

// NewForTesting creates a Handlers instance with a silent logger
func NewForTesting(
	company services.CompanyServicer,
	invoice services.InvoiceServicer,
	health services.HealthServicer,
) *Handlers {
	return New(company, invoice, health, NoopLogger{}, DefaultRequestTimeout)
}
