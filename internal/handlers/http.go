package handlers

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abrezinsky/biztime/internal/errors"
)

// Default messages used when an error carries none
const (
	MsgBadRequest     = "Bad Request"
	MsgNotFound       = "Not Found"
	MsgInternalServer = "Internal server error"
)

// APIError is the body of every error response
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return e.Message
}

// errorEnvelope wraps an APIError as {"error": {...}}
type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// Common errors
var (
	ErrBadRequest     = &APIError{Status: http.StatusBadRequest, Message: MsgBadRequest}
	ErrNotFound       = &APIError{Status: http.StatusNotFound, Message: MsgNotFound}
	ErrInternalServer = &APIError{Status: http.StatusInternalServerError, Message: MsgInternalServer}
)

// BadRequest creates a 400 error with a custom message
func BadRequest(message string) *APIError {
	if message == "" {
		message = MsgBadRequest
	}
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NotFound creates a 404 error with a custom message
func NotFound(message string) *APIError {
	if message == "" {
		message = MsgNotFound
	}
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondOK writes a 200 OK JSON response
func respondOK(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, data)
}

// respondCreated writes a 201 Created JSON response
func respondCreated(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusCreated, data)
}

// respondDeleted writes the {"status": "deleted"} body
func respondDeleted(w http.ResponseWriter) {
	respondOK(w, StatusResponse{Status: "deleted"})
}

// respondError translates err and writes it as an error body.
// Internal errors are logged and their cause is not exposed.
func (h *Handlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := err.(*APIError)
	if !ok {
		apiErr = ToAPIError(err)
	}
	if apiErr.Status == http.StatusInternalServerError && h.Log != nil {
		h.Log.Error("Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
	}
	respondJSON(w, apiErr.Status, errorEnvelope{Error: apiErr})
}

// decodeJSON decodes a JSON request body into target, rejecting unknown fields
func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return BadRequest("Request body is empty")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		if err == io.EOF {
			return BadRequest("Request body is empty")
		}
		if strings.HasPrefix(err.Error(), "json: unknown field ") {
			return BadRequest("Unknown field " + strings.TrimPrefix(err.Error(), "json: unknown field "))
		}
		return BadRequest("Invalid JSON: " + err.Error())
	}
	if dec.More() {
		return BadRequest("Invalid JSON: unexpected data after body")
	}
	return nil
}

// parseIntParam extracts and parses an integer URL parameter
func parseIntParam(r *http.Request, name string) (int64, error) {
	param := chi.URLParam(r, name)
	if param == "" {
		return 0, BadRequest("Missing " + name + " parameter")
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, BadRequest("Invalid " + name + " parameter")
	}
	return id, nil
}

// ToAPIError converts service errors to API errors. Anything that is not an
// application error is internal.
func ToAPIError(err error) *APIError {
	var appErr *errors.Error
	if !stderrors.As(err, &appErr) {
		return ErrInternalServer
	}

	switch appErr.Kind {
	case errors.ErrBadRequest:
		return BadRequest(appErr.Message)
	case errors.ErrNotFound:
		return NotFound(appErr.Message)
	case errors.ErrInternal:
		return ErrInternalServer
	default:
		return ErrInternalServer
	}
}
