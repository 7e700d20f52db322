package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(h.RequestTimeout))

	r.Get("/healthz", h.handleHealth)

	// Companies
	r.Route("/companies", func(r chi.Router) {
		r.Get("/", h.handleListCompanies)
		r.Post("/", h.handleCreateCompany)
		r.Get("/{code}", h.handleGetCompany)
		r.Put("/{code}", h.handleUpdateCompany)
		r.Delete("/{code}", h.handleDeleteCompany)
	})

	// Invoices
	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", h.handleListInvoices)
		r.Post("/", h.handleCreateInvoice)
		r.Get("/{id}", h.handleGetInvoice)
		r.Put("/{id}", h.handleUpdateInvoice)
		r.Delete("/{id}", h.handleDeleteInvoice)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, ErrNotFound)
	})

	return r
}
