package handlers

import (
	"net/http"

	"github.com/abrezinsky/biztime/internal/models"
)

func (h *Handlers) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Invoice.ListInvoices(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondOK(w, InvoiceListResponse{Invoices: invoices})
}

func (h *Handlers) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	invoice, err := h.Invoice.GetInvoice(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondOK(w, InvoiceDetailResponse{Invoice: invoice})
}

func (h *Handlers) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req InvoiceCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if req.CompCode == nil {
		h.respondError(w, r, BadRequest("comp_code is required"))
		return
	}
	if req.Amt == nil {
		h.respondError(w, r, BadRequest("amt is required"))
		return
	}

	invoice, err := h.Invoice.CreateInvoice(r.Context(), *req.CompCode, *req.Amt)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondCreated(w, InvoiceResponse{Invoice: invoice})
}

func (h *Handlers) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var req InvoiceUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	id, err := parseIntParam(r, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// A missing amount is reported the same way as a zero one.
	var amt models.Amount
	if req.Amt != nil {
		amt = *req.Amt
	}

	invoice, err := h.Invoice.UpdateInvoiceAmount(r.Context(), id, amt)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondOK(w, InvoiceResponse{Invoice: invoice})
}

func (h *Handlers) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.Invoice.DeleteInvoice(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	respondDeleted(w)
}
