package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/biztime/internal/handlers"
	"github.com/abrezinsky/biztime/internal/logger"
	"github.com/abrezinsky/biztime/internal/models"
	"github.com/abrezinsky/biztime/internal/repository"
	"github.com/abrezinsky/biztime/internal/repository/mock"
	"github.com/abrezinsky/biztime/internal/services"
	"github.com/abrezinsky/biztime/internal/testutil"
)

type testSetup struct {
	repo     *repository.Repository
	mockRepo *mock.Repository
	router   chi.Router
	company  models.Company
}

func strPtr(s string) *string { return &s }

// newTestSetup builds a router over an in-memory store seeded with one company.
// Services go through the mock wrapper so tests can inject repository errors.
func newTestSetup(t *testing.T) *testSetup {
	t.Helper()
	return newTestSetupWithLogger(t, handlers.NoopLogger{})
}

// newTestSetupWithLogger is newTestSetup with a caller-supplied handler logger
func newTestSetupWithLogger(t *testing.T, handlerLog handlers.Logger) *testSetup {
	t.Helper()

	repo := testutil.NewTestRepository(t)
	mockRepo := mock.NewRepository(repo)
	log := logger.Nop()

	h := handlers.New(
		services.NewCompanyService(log, mockRepo),
		services.NewInvoiceService(log, mockRepo),
		services.NewHealthService(log, mockRepo),
		handlerLog,
		handlers.DefaultRequestTimeout,
	)

	company, err := repo.CreateCompany(context.Background(), models.Company{
		Code:        "mcd",
		Name:        "McDonalds",
		Description: strPtr("fast food place"),
	})
	if err != nil {
		t.Fatalf("failed to seed company: %v", err)
	}

	return &testSetup{
		repo:     repo,
		mockRepo: mockRepo,
		router:   h.Router(),
		company:  *company,
	}
}

// do sends a request with an optional raw JSON body
func (s *testSetup) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// createInvoice inserts an invoice for the seeded company directly in the store
func (s *testSetup) createInvoice(t *testing.T, units int64) *models.Invoice {
	t.Helper()
	invoice, err := s.repo.CreateInvoice(context.Background(), s.company.Code, models.NewAmount(units))
	if err != nil {
		t.Fatalf("failed to create invoice: %v", err)
	}
	return invoice
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

// assertError checks the status code and the {"error": {...}} body
func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	if rec.Code != status {
		t.Errorf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}

	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Error.Status != status {
		t.Errorf("expected body status %d, got %d", status, body.Error.Status)
	}
	if message != "" && body.Error.Message != message {
		t.Errorf("expected message %q, got %q", message, body.Error.Message)
	}
}

// decodeBody decodes the recorder body into a generic map
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}
