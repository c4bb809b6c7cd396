package http

import "net/http"

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := h.services.SummaryService.GetSummary(r.Context(), identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, summary, http.StatusOK)
}
