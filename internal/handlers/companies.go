package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/biztime/internal/models"
)

func (h *Handlers) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Company.ListCompanies(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	summaries := make([]CompanySummary, 0, len(companies))
	for _, c := range companies {
		summaries = append(summaries, CompanySummary{Code: c.Code, Name: c.Name})
	}
	respondOK(w, CompanyListResponse{Companies: summaries})
}

func (h *Handlers) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.Company.GetCompany(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondOK(w, CompanyDetailResponse{Company: company})
}

func (h *Handlers) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req CompanyCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if req.Code == nil {
		h.respondError(w, r, BadRequest("code is required"))
		return
	}
	if req.Name == nil {
		h.respondError(w, r, BadRequest("name is required"))
		return
	}

	company, err := h.Company.CreateCompany(r.Context(), models.Company{
		Code:        *req.Code,
		Name:        *req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondCreated(w, CompanyResponse{Company: company})
}

func (h *Handlers) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req CompanyUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if req.Name == nil {
		h.respondError(w, r, BadRequest("name is required"))
		return
	}

	company, err := h.Company.UpdateCompany(r.Context(), models.Company{
		Code:        chi.URLParam(r, "code"),
		Name:        *req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondOK(w, CompanyResponse{Company: company})
}

func (h *Handlers) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := h.Company.DeleteCompany(r.Context(), chi.URLParam(r, "code")); err != nil {
		h.respondError(w, r, err)
		return
	}

	respondDeleted(w)
}
