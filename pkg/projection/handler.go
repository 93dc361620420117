package projection

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

type EntryDTO struct {
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Kind       string  `json:"kind"`
	Flow       string  `json:"flow"`
	SourceId   int     `json:"sourceId"`
	CategoryId *int    `json:"categoryId,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// GetProjection answers GET /api/projection?from&to with optional
// hoursPerDay and skipWeekends parameters controlling work-unit
// distribution.
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
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

	perDay := time.Duration(0)
	if raw := query.Get("hoursPerDay"); raw != "" {
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil || hours <= 0 {
			http.Error(w, "hoursPerDay must be a positive number", http.StatusBadRequest)
			return
		}
		perDay = time.Duration(math.Round(hours*60)) * time.Minute
	}
	skipWeekends := query.Get("skipWeekends") == "true"

	entries, err := h.service.Project(r.Context(), from, to, perDay, skipWeekends)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, EntryDTO{
			Date:       e.Date.Format(dateLayout),
			Amount:     e.Amount.Float(),
			Kind:       string(e.Kind),
			Flow:       string(e.Flow),
			SourceId:   e.SourceId,
			CategoryId: e.CategoryId,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
