package google

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

type exportResponse struct {
	SpreadsheetUrl string `json:"spreadsheetUrl"`
}

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s}
}

// ExportBudgetReport answers POST /api/reports/google-sheets?from&to.
func (h *Handler) ExportBudgetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query()
	from, err := time.Parse(dateLayout, query.Get("from"))
	if err != nil {
		http.Error(w, "from must be a date in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}
	to, err := time.Parse(dateLayout, query.Get("to"))
	if err != nil {
		http.Error(w, "to must be a date in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	url, err := h.service.ExportBudgetReport(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(exportResponse{SpreadsheetUrl: url}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
