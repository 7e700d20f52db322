package handlers

import "net/http"

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.Health.Check(r.Context()); err != nil {
		h.respondError(w, r, err)
		return
	}

	respondOK(w, StatusResponse{Status: "ok"})
}
