package errors

import (
	"errors"
	"fmt"
	"testing"
)

// =============================================================================
// Test Error Types and Constructors
// =============================================================================

func TestNotFound(t *testing.T) {
	err := NotFound("Company not found.")

	if err.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound (%d), got %d", ErrNotFound, err.Kind)
	}
	if err.Message != "Company not found." {
		t.Errorf("expected Message to be 'Company not found.', got '%s'", err.Message)
	}
	if err.Err != nil {
		t.Errorf("expected Err to be nil, got %v", err.Err)
	}
}

func TestNotFoundf(t *testing.T) {
	err := NotFoundf("Invoice of id %d not found.", 42)

	if err.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound (%d), got %d", ErrNotFound, err.Kind)
	}
	if err.Message != "Invoice of id 42 not found." {
		t.Errorf("expected Message to be 'Invoice of id 42 not found.', got '%s'", err.Message)
	}
}

func TestBadRequest(t *testing.T) {
	err := BadRequest("Amount not provided for invoicing.")

	if err.Kind != ErrBadRequest {
		t.Errorf("expected Kind to be ErrBadRequest (%d), got %d", ErrBadRequest, err.Kind)
	}
	if err.Message != "Amount not provided for invoicing." {
		t.Errorf("unexpected Message '%s'", err.Message)
	}
	if err.Err != nil {
		t.Errorf("expected Err to be nil, got %v", err.Err)
	}
}

func TestBadRequestf(t *testing.T) {
	err := BadRequestf("%s is required", "comp_code")

	if err.Kind != ErrBadRequest {
		t.Errorf("expected Kind to be ErrBadRequest (%d), got %d", ErrBadRequest, err.Kind)
	}
	if err.Message != "comp_code is required" {
		t.Errorf("expected Message to be 'comp_code is required', got '%s'", err.Message)
	}
}

func TestInternal(t *testing.T) {
	underlyingErr := fmt.Errorf("database connection failed")
	err := Internal(underlyingErr)

	if err.Kind != ErrInternal {
		t.Errorf("expected Kind to be ErrInternal (%d), got %d", ErrInternal, err.Kind)
	}
	if err.Message != "internal error" {
		t.Errorf("expected Message to be 'internal error', got '%s'", err.Message)
	}
	if err.Err != underlyingErr {
		t.Errorf("expected Err to be %v, got %v", underlyingErr, err.Err)
	}
}

func TestInternalf(t *testing.T) {
	err := Internalf("failed to process request: %s", "timeout")

	if err.Kind != ErrInternal {
		t.Errorf("expected Kind to be ErrInternal (%d), got %d", ErrInternal, err.Kind)
	}
	if err.Message != "failed to process request: timeout" {
		t.Errorf("unexpected Message '%s'", err.Message)
	}
}

// =============================================================================
// Test Wrap, Error and Unwrap
// =============================================================================

func TestWrap(t *testing.T) {
	underlyingErr := fmt.Errorf("original error")
	err := Wrap(underlyingErr, ErrNotFound, "wrapped context")

	if err.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound (%d), got %d", ErrNotFound, err.Kind)
	}
	if err.Message != "wrapped context" {
		t.Errorf("expected Message to be 'wrapped context', got '%s'", err.Message)
	}
	if !errors.Is(err, underlyingErr) {
		t.Error("expected wrapped error to match underlying error via errors.Is")
	}
}

func TestError_String(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message only", NotFound("mcd not found."), "mcd not found."},
		{"with cause", Wrap(fmt.Errorf("boom"), ErrInternal, "query failed"), "query failed: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestErrorsAs_ThroughFmtWrap(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", BadRequest("bad"))

	var appErr *Error
	if !errors.As(wrapped, &appErr) {
		t.Fatal("expected errors.As to find *Error")
	}
	if appErr.Kind != ErrBadRequest {
		t.Errorf("expected ErrBadRequest, got %v", appErr.Kind)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("x"), ErrNotFound},
		{"bad request", BadRequest("x"), ErrBadRequest},
		{"internal", Internal(fmt.Errorf("x")), ErrInternal},
		{"wrapped bad request", fmt.Errorf("ctx: %w", BadRequest("x")), ErrBadRequest},
		{"plain error", fmt.Errorf("plain"), ErrInternal},
		{"nil", nil, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		ErrInternal:   "internal",
		ErrNotFound:   "not_found",
		ErrBadRequest: "bad_request",
		Kind(99):      "internal",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
